package token

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwMut, KwFn, KwDo, KwIf, KwElse, KwReturn, KwTypedef, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsBlockMarker reports whether the token is a synthetic indentation marker.
func (t Token) IsBlockMarker() bool {
	return t.Kind == Indent || t.Kind == Dedent
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
