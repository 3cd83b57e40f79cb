// Package ast defines the syntax tree produced by the parser.
//
// Nodes are stored in arenas and addressed by integer IDs; 0 is never a
// valid ID. Every node kind has a fixed-size head (kind, span, payload)
// while per-kind data lives in dedicated payload arenas. Consumers key
// side tables by node IDs instead of hanging analysis results off the
// nodes themselves.
package ast
