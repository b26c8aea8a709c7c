// Package rules implements the named validation rule table.
//
// The legacy profile loader left the rule set implicit in code; here
// it is an explicit table (see Table) so the active rules are
// configuration, not inference. Each rule kind is addressable by name
// and produces violations carrying the rule name, field and message.
package rules
