// Package file loads and saves the profile-data configuration.
//
// Configuration is a TOML file holding the validation rule table, the
// enrichment tags and the I/O defaults. A missing file yields the
// default configuration (the legacy loader's profile schema), so the
// tool works without any setup.
package file
