// Package cli implements the profile-data command line interface.
//
// Commands delegate to the core services through the driving ports.
// Services are wired from configuration before the first command runs;
// tests swap the package-level service variables for mocks.
package cli
