// Package domain contains the core business entities for profile-data.
//
// These types have no dependencies on infrastructure - they represent
// the pure domain model: profile records, validation outcomes, run
// reports, and the errors the pipeline can surface.
//
// Import Rules:
//   - Can Import: standard library only
//   - Cannot Import: ports, services, adapters
package domain
