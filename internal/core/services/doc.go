// Package services implements the core use cases of profile-data.
//
// Services depend only on the domain and the port interfaces; all I/O
// goes through driven ports so the pipeline logic is testable without
// touching the filesystem.
package services
