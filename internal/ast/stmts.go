package ast

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Exprs   *Arena[StmtExprData]
	Lets    *Arena[StmtLetData]
	Returns *Arena[StmtReturnData]
	Ifs     *Arena[StmtIfData]
	Blocks  *Arena[StmtBlockData]
	Dos     *Arena[StmtDoData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
		Lets:    NewArena[StmtLetData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Ifs:     NewArena[StmtIfData](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
		Dos:     NewArena[StmtDoData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewExpr creates a new expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement data for the given ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewLet creates a new let binding statement.
func (s *Stmts) NewLet(span source.Span, name source.StringID, nameSpan source.Span, isMut bool, typ TypeID, value ExprID) StmtID {
	payload := s.Lets.Allocate(StmtLetData{
		Name:     name,
		NameSpan: nameSpan,
		IsMut:    isMut,
		Type:     typ,
		Value:    value,
	})
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the let binding data for the given ID.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a new return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return statement data for the given ID.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewIf creates a new conditional statement.
func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

// If returns the conditional data for the given ID.
func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewBlock creates a new block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block data for the given ID.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewDo creates a new do statement wrapping a block.
func (s *Stmts) NewDo(span source.Span, body StmtID) StmtID {
	payload := s.Dos.Allocate(StmtDoData{Body: body})
	return s.new(StmtDo, span, PayloadID(payload))
}

// Do returns the do statement data for the given ID.
func (s *Stmts) Do(id StmtID) (*StmtDoData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDo {
		return nil, false
	}
	return s.Dos.Get(uint32(stmt.Payload)), true
}
