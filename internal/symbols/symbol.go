package symbols

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

type SymbolKind uint8

const (
	SymVar SymbolKind = iota
	SymParam
	SymFn
	SymType
)

func (k SymbolKind) String() string {
	switch k {
	case SymVar:
		return "variable"
	case SymParam:
		return "parameter"
	case SymFn:
		return "function"
	case SymType:
		return "type"
	default:
		return "?"
	}
}

// Symbol — одна привязка имени. Флаги Read и Mutated заполняются по ходу
// разрешения и питают линты.
type Symbol struct {
	Name     source.StringID
	Kind     SymbolKind
	Addr     ScopeAddress
	DeclSpan source.Span
	Mutable  bool
	Read     bool
	Mutated  bool
}
