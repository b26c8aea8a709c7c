// Package driving defines the interfaces through which the outside
// world drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter depends on these interfaces, and core services
// implement them.
//
// Import Rules:
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
