// Package diag defines the diagnostic model shared by the lexer, parser and
// resolver.
//
//   - Diagnostic is the central record: severity (lint/warning/error), a
//     compact numeric Code with a stable string form, a human message, the
//     primary source.Span and optional Notes pointing at secondary locations
//     (e.g. the original declaration for a redeclaration error).
//   - Producers emit through the Reporter interface so they stay decoupled
//     from storage; BagReporter aggregates into a Bag.
//   - A Bag accumulates monotonically — diagnostics are never retracted.
//     Sort gives a deterministic file/span/severity/code order for output.
//
// Rendering lives in internal/diagfmt; this package does no formatting or IO.
package diag
