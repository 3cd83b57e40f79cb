package parser

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// Precedence — уровень связывания оператора; больше = сильнее.
type Precedence uint8

const (
	PrecMin Precedence = iota
	PrecReturn
	PrecAssign
	PrecEquality
	PrecCompare
	PrecAddSub
	PrecMulDiv
	PrecModulo
	PrecNumericPrefix
	PrecParen
	PrecMax
)

func (p Precedence) String() string {
	switch p {
	case PrecMin:
		return "min"
	case PrecReturn:
		return "return"
	case PrecAssign:
		return "assign"
	case PrecEquality:
		return "equality"
	case PrecCompare:
		return "compare"
	case PrecAddSub:
		return "add/sub"
	case PrecMulDiv:
		return "mul/div"
	case PrecModulo:
		return "modulo"
	case PrecNumericPrefix:
		return "numeric prefix"
	case PrecParen:
		return "paren"
	case PrecMax:
		return "max"
	default:
		return "?"
	}
}

// PrecedenceOf — чистая функция (вид токена, префиксная позиция) → уровень.
// Один и тот же токен может связывать по-разному: `-` как префикс сильнее,
// чем `-` как инфикс.
func PrecedenceOf(kind token.Kind, isPrefix bool) Precedence {
	if isPrefix {
		switch kind {
		case token.Minus:
			return PrecNumericPrefix
		case token.LParen:
			return PrecParen
		default:
			return PrecMin
		}
	}
	switch kind {
	case token.Assign, token.PlusAssign, token.MinusAssign,
		token.StarAssign, token.SlashAssign, token.PercentAssign:
		return PrecAssign
	case token.EqEq, token.BangEq:
		return PrecEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return PrecCompare
	case token.Plus, token.Minus:
		return PrecAddSub
	case token.Star, token.Slash:
		return PrecMulDiv
	case token.Percent:
		return PrecModulo
	case token.LParen:
		return PrecParen // вызов функции
	default:
		return PrecMin
	}
}
