package lexer

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// lineStartMarkers measures the indentation of the current line and queues
// Indent/Dedent markers for the depth change. Blank and comment-only lines
// are insignificant: they neither open nor close blocks.
func (lx *Lexer) lineStartMarkers() {
	mark := lx.cursor.Mark()

	var width uint32
	for {
		switch lx.cursor.Peek() {
		case ' ':
			width++
			lx.cursor.Bump()
			continue
		case '\t':
			// таб добивает до следующей колонки кратной TabWidth
			width += lx.opts.TabWidth - width%lx.opts.TabWidth
			lx.cursor.Bump()
			continue
		}
		break
	}

	if lx.cursor.EOF() {
		return
	}
	b := lx.cursor.Peek()
	if b == '\n' || b == '\r' {
		return // пустая строка
	}
	if _, b1, ok := lx.cursor.Peek2(); b == '/' && ok && b1 == '/' {
		return // строка из одного комментария
	}

	lx.atLineStart = false
	sp := lx.cursor.SpanFrom(mark)
	sp.Start = sp.End // маркеры несут пустой span у начала текста строки

	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.queue = append(lx.queue, token.Token{Kind: token.Indent, Span: sp})

	case width < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > width {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.queue = append(lx.queue, token.Token{Kind: token.Dedent, Span: sp})
		}
		if lx.indents[len(lx.indents)-1] != width {
			lx.report(diag.LexBadDedent, sp, "dedent does not match any outer indentation level")
			// ресинк: принимаем фактическую ширину без выдачи Indent
			lx.indents = append(lx.indents, width)
		}
	}
}
