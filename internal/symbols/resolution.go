package symbols

import (
	"fmt"

	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
)

// Resolution — результат разрешения одного файла: таблица символов и
// боковые таблицы узел → адрес. Узлы без адреса — либо ещё не
// разрешались, либо их разрешение провалилось и уже отрепорчено;
// Must*-аксессоры различают это паникой.
type Resolution struct {
	Table *Table

	exprAddrs  map[ast.ExprID]ScopeAddress
	stmtAddrs  map[ast.StmtID]ScopeAddress
	itemAddrs  map[ast.ItemID]ScopeAddress
	paramAddrs map[ast.FnParamID]ScopeAddress
	typeAddrs  map[ast.TypeID]ScopeAddress

	errors uint
}

func newResolution() *Resolution {
	return &Resolution{
		Table:      NewTable(),
		exprAddrs:  make(map[ast.ExprID]ScopeAddress),
		stmtAddrs:  make(map[ast.StmtID]ScopeAddress),
		itemAddrs:  make(map[ast.ItemID]ScopeAddress),
		paramAddrs: make(map[ast.FnParamID]ScopeAddress),
		typeAddrs:  make(map[ast.TypeID]ScopeAddress),
	}
}

// HasErrors reports whether the pass recorded any resolution error.
func (r *Resolution) HasErrors() bool {
	return r.errors > 0
}

// ExprAddr returns the address resolved for a reference expression.
func (r *Resolution) ExprAddr(id ast.ExprID) (ScopeAddress, bool) {
	addr, ok := r.exprAddrs[id]
	return addr, ok
}

// MustExprAddr panics when the node carries no address: either
// resolution has not run or the reference failed and was reported.
func (r *Resolution) MustExprAddr(id ast.ExprID) ScopeAddress {
	addr, ok := r.exprAddrs[id]
	if !ok {
		panic(fmt.Sprintf("symbols: expr %d has no resolved address", id))
	}
	return addr
}

// StmtAddr returns the address assigned to a let binding.
func (r *Resolution) StmtAddr(id ast.StmtID) (ScopeAddress, bool) {
	addr, ok := r.stmtAddrs[id]
	return addr, ok
}

func (r *Resolution) MustStmtAddr(id ast.StmtID) ScopeAddress {
	addr, ok := r.stmtAddrs[id]
	if !ok {
		panic(fmt.Sprintf("symbols: stmt %d has no resolved address", id))
	}
	return addr
}

// ItemAddr returns the unit-level address of a top-level item.
func (r *Resolution) ItemAddr(id ast.ItemID) (ScopeAddress, bool) {
	addr, ok := r.itemAddrs[id]
	return addr, ok
}

func (r *Resolution) MustItemAddr(id ast.ItemID) ScopeAddress {
	addr, ok := r.itemAddrs[id]
	if !ok {
		panic(fmt.Sprintf("symbols: item %d has no resolved address", id))
	}
	return addr
}

// ParamAddr returns the address assigned to a function parameter.
func (r *Resolution) ParamAddr(id ast.FnParamID) (ScopeAddress, bool) {
	addr, ok := r.paramAddrs[id]
	return addr, ok
}

func (r *Resolution) MustParamAddr(id ast.FnParamID) ScopeAddress {
	addr, ok := r.paramAddrs[id]
	if !ok {
		panic(fmt.Sprintf("symbols: param %d has no resolved address", id))
	}
	return addr
}

// TypeAddr returns the address a type annotation resolved to.
func (r *Resolution) TypeAddr(id ast.TypeID) (ScopeAddress, bool) {
	addr, ok := r.typeAddrs[id]
	return addr, ok
}
