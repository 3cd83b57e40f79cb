package ast

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIdent
	ExprLit
	ExprUnary
	ExprBinary
	ExprAssign
	ExprCall
	ExprGroup
	ExprIf
)

// Expr is the fixed-size head of every expression node; per-kind payloads
// live in their own arenas, addressed by Payload.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprLitKind uint8

const (
	ExprLitInt ExprLitKind = iota
	ExprLitFloat
	ExprLitBool
	ExprLitUnit
)

type ExprUnaryOp uint8

const (
	ExprUnaryMinus ExprUnaryOp = iota
)

type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
)

func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	default:
		return "?"
	}
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID // исходный текст литерала
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
	// Prec is the precedence context the prefix parselet was registered
	// with; kept so tooling can distinguish e.g. numeric prefix minus
	// from an additive minus.
	Prec uint8
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprAssignData covers both plain `x = e` and the desugared compound
// forms: `x += e` arrives here with Value being `x + e`.
type ExprAssignData struct {
	Target ExprID // always an ExprIdent
	Value  ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprGroupData struct {
	Inner ExprID
}

// ExprIfData is the inline conditional `if c => a else b`.
type ExprIfData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}
