// Package token defines lexical token kinds for the snirk front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End); synthetic Indent/Dedent
//     tokens carry an empty span at the line start that produced them.
//   - Indent/Dedent are emitted by the lexer from indentation depth and are
//     the only block delimiters; there are no brace tokens.
//   - Built-in type names (int, float, bool, unit) are identifiers. They are
//     recognized by the resolver prelude, not the lexer.
package token
