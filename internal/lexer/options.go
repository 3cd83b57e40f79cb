package lexer

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// Options configure a single Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics; nil means errors are dropped
	// (lexing continues either way).
	Reporter diag.Reporter
	// TabWidth is the column width of a tab for indentation measurement.
	// Zero means the default of 4.
	TabWidth uint32
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
