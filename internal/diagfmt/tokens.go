package diagfmt

import (
	"fmt"
	"io"

	"github.com/snirk-lang/protosnirk-sub001/internal/source"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// Tokens печатает поток токенов по строке на токен:
// <line>:<col> <kind> <text>
func Tokens(w io.Writer, toks []token.Token, fs *source.FileSet) {
	for _, tok := range toks {
		start, _ := fs.Resolve(tok.Span)
		switch tok.Kind {
		case token.Indent, token.Dedent, token.EOF:
			fmt.Fprintf(w, "%d:%d %s\n", start.Line, start.Col, tok.Kind)
		default:
			fmt.Fprintf(w, "%d:%d %s %q\n", start.Line, start.Col, tok.Kind, tok.Text)
		}
	}
}
