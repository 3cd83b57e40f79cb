package lexer

import (
	"fmt"

	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// scanOperatorOrPunct сканирует операторы и пунктуацию (жадно: сперва
// двухбайтовые формы).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	mk := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try2('+', '='):
		return mk(token.PlusAssign)
	case lx.try2('-', '='):
		return mk(token.MinusAssign)
	case lx.try2('*', '='):
		return mk(token.StarAssign)
	case lx.try2('/', '='):
		return mk(token.SlashAssign)
	case lx.try2('%', '='):
		return mk(token.PercentAssign)
	case lx.try2('=', '='):
		return mk(token.EqEq)
	case lx.try2('!', '='):
		return mk(token.BangEq)
	case lx.try2('<', '='):
		return mk(token.LtEq)
	case lx.try2('>', '='):
		return mk(token.GtEq)
	case lx.try2('-', '>'):
		return mk(token.Arrow)
	case lx.try2('=', '>'):
		return mk(token.FatArrow)
	}

	b := lx.cursor.Bump()
	switch b {
	case '+':
		return mk(token.Plus)
	case '-':
		return mk(token.Minus)
	case '*':
		return mk(token.Star)
	case '/':
		return mk(token.Slash)
	case '%':
		return mk(token.Percent)
	case '=':
		return mk(token.Assign)
	case '<':
		return mk(token.Lt)
	case '>':
		return mk(token.Gt)
	case ':':
		return mk(token.Colon)
	case ',':
		return mk(token.Comma)
	case '(':
		lx.parenDepth++
		return mk(token.LParen)
	case ')':
		if lx.parenDepth > 0 {
			lx.parenDepth--
		}
		return mk(token.RParen)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", rune(b)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}
