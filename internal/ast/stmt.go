package ast

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtExpr
	StmtLet
	StmtReturn
	StmtIf
	StmtBlock
	StmtDo
)

// Stmt is the fixed-size head of every statement node.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtExprData struct {
	Expr ExprID
}

type StmtLetData struct {
	Name     source.StringID
	NameSpan source.Span
	IsMut    bool
	Type     TypeID // NoTypeID when omitted
	Value    ExprID
}

type StmtReturnData struct {
	Value ExprID // NoExprID for a bare return
}

// StmtIfData is one link of a conditional chain: Else is either a block,
// the next `else if` statement, or NoStmtID.
type StmtIfData struct {
	Cond ExprID
	Then StmtID // always a StmtBlock
	Else StmtID
}

type StmtBlockData struct {
	Stmts []StmtID
}

// StmtDoData introduces an explicit block. The inline form `do <stmt>`
// arrives here with Body being a one-statement block.
type StmtDoData struct {
	Body StmtID // always a StmtBlock
}
