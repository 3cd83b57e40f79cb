package ast

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// Hints pre-sizes the arenas; zero fields get defaults.
type Hints struct{ Files, Items, Stmts, Exprs, Types uint }

// Builder owns every arena produced while parsing one or more files,
// plus the interner all name and literal StringIDs resolve against.
type Builder struct {
	Files   *Files
	Items   *Items
	Stmts   *Stmts
	Exprs   *Exprs
	Types   *Types
	Strings *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Items == 0 {
		hints.Items = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 6
	}
	return &Builder{
		Files:   NewFiles(hints.Files),
		Items:   NewItems(hints.Items),
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Types:   NewTypes(hints.Types),
		Strings: source.NewInterner(),
	}
}
