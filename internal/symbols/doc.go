// Package symbols resolves names to hierarchical scope addresses.
//
// Every binding gets a ScopeAddress: one small integer per nesting
// level, lexicographically ordered, unique within a file. Resolution
// runs in two passes so functions may reference functions declared
// later in the same file; locals still require declaration before use.
// Results live in side tables keyed by arena node IDs; the syntax tree
// is never mutated.
package symbols
