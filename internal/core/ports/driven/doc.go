// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - RecordReader: Decodes the input document into records
//   - RecordWriter: Encodes a record sequence to an output document
//   - RuleSet: Evaluates the validation rule table against a record
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - Enricher: Stamps batch metadata onto records before validation
//   - RunStore: Persists the run ledger. Without it, history is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, rules, or enrich package
package driven
