package symbols

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
)

// lint сканирует таблицу символов в порядке объявления. Вызывается
// только после прохода без единой ошибки.
func (r *resolver) lint() {
	for _, sym := range r.res.Table.Symbols() {
		if sym.Kind != SymVar {
			continue
		}
		text := r.arenas.Strings.MustLookup(sym.Name)
		switch {
		case !sym.Read:
			diag.ReportLint(r.opts.Reporter, diag.LintUnusedVariable, sym.DeclSpan,
				"variable \""+text+"\" is never used").Emit()
		case sym.Mutable && !sym.Mutated:
			diag.ReportLint(r.opts.Reporter, diag.LintUnusedMutable, sym.DeclSpan,
				"variable \""+text+"\" is mutable but never mutated").Emit()
		}
	}
}
