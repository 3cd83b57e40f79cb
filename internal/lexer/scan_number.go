package lexer

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// scanNumber сканирует целые и вещественные литералы:
// 123, 123.45, .5, 1e9, 2.5e-3. Подчёркивания-разделители допускаются
// между цифрами: 1_000_000.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	digits := func() bool {
		seen := false
		for {
			b := lx.cursor.Peek()
			if isDec(b) {
				seen = true
				lx.cursor.Bump()
				continue
			}
			if b == '_' {
				if _, b1, ok := lx.cursor.Peek2(); ok && isDec(b1) {
					lx.cursor.Bump()
					continue
				}
			}
			return seen
		}
	}

	if lx.cursor.Peek() == '.' {
		// форма .5
		kind = token.FloatLit
		lx.cursor.Bump()
		digits()
	} else {
		digits()
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
			kind = token.FloatLit
			lx.cursor.Bump()
			digits()
		}
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			kind = token.FloatLit
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			if !digits() {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "exponent has no digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
		}
	}

	// число не должно срастаться с идентификатором: 12ab — ошибка
	if b := lx.cursor.Peek(); isIdentStartByte(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadNumber, sp, "malformed numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
