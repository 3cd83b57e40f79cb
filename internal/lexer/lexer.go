package lexer

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

const defaultTabWidth = 4

// Lexer scans one file into significant tokens. Block structure is
// whitespace-sensitive: the lexer measures leading indentation per line and
// emits synthetic Indent/Dedent markers; inside parentheses indentation is
// ignored so expressions may continue across lines.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token  // 1-элементный буфер для Peek
	queue  []token.Token // отложенные синтетические маркеры

	indents     []uint32 // стек отступов, дно всегда 0
	parenDepth  uint32
	atLineStart bool
	eofFlushed  bool
}

func New(file *source.File, opts Options) *Lexer {
	if opts.TabWidth == 0 {
		opts.TabWidth = defaultTabWidth
	}
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		indents:     []uint32{0},
		atLineStart: true,
	}
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if len(lx.queue) > 0 {
		tok := lx.queue[0]
		lx.queue = lx.queue[1:]
		return tok
	}

	for {
		if lx.atLineStart && lx.parenDepth == 0 {
			lx.lineStartMarkers()
			if len(lx.queue) > 0 {
				tok := lx.queue[0]
				lx.queue = lx.queue[1:]
				return tok
			}
		}

		lx.skipInlineTrivia()

		if lx.cursor.EOF() {
			return lx.finish()
		}

		if lx.cursor.Peek() == '\n' {
			lx.cursor.Bump()
			if lx.parenDepth == 0 {
				lx.atLineStart = true
			}
			continue
		}

		break
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// PeekKind is a small convenience over Peek.
func (lx *Lexer) PeekKind() token.Kind {
	return lx.Peek().Kind
}

// IsAtEnd reports whether the next significant token is EOF.
func (lx *Lexer) IsAtEnd() bool {
	return lx.PeekKind() == token.EOF
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Tokens drains the lexer into a slice, EOF included. Test and CLI helper.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}

// finish flushes pending dedents before the terminal EOF token.
func (lx *Lexer) finish() token.Token {
	if !lx.eofFlushed {
		lx.eofFlushed = true
		if lx.parenDepth > 0 {
			lx.report(diag.LexUnclosedParen, lx.EmptySpan(), "unclosed parenthesis at end of file")
		}
		for len(lx.indents) > 1 {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.queue = append(lx.queue, token.Token{Kind: token.Dedent, Span: lx.EmptySpan()})
		}
		if len(lx.queue) > 0 {
			tok := lx.queue[0]
			lx.queue = lx.queue[1:]
			return tok
		}
	}
	return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
}

// skipInlineTrivia съедает пробелы, табы и // комментарии до конца строки.
func (lx *Lexer) skipInlineTrivia() {
	for {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r':
			lx.cursor.Bump()
		case b == '/':
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '/' {
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}
