package parser

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// PrefixParselet разбирает конструкцию, начинающуюся с tok (уже съеден).
type PrefixParselet interface {
	Parse(p *Parser, tok token.Token) (ast.ExprID, bool)
}

// InfixParselet расширяет уже разобранный левый узел; tok — оператор,
// уже съеденный парсером.
type InfixParselet interface {
	Parse(p *Parser, left ast.ExprID, tok token.Token) (ast.ExprID, bool)
	Precedence() Precedence
}

// Registry — неизменяемое после конструирования отображение
// вид токена → поведение; разделяется между всеми разборами.
type Registry struct {
	prefix map[token.Kind]PrefixParselet
	infix  map[token.Kind]InfixParselet
}

// Prefix returns the prefix parselet registered for kind.
func (r *Registry) Prefix(kind token.Kind) (PrefixParselet, bool) {
	pl, ok := r.prefix[kind]
	return pl, ok
}

// Infix returns the infix parselet registered for kind.
func (r *Registry) Infix(kind token.Kind) (InfixParselet, bool) {
	pl, ok := r.infix[kind]
	return pl, ok
}

// InfixPrecedence returns PrecMin when kind has no infix meaning.
func (r *Registry) InfixPrecedence(kind token.Kind) Precedence {
	if pl, ok := r.infix[kind]; ok {
		return pl.Precedence()
	}
	return PrecMin
}

func newRegistry() *Registry {
	r := &Registry{
		prefix: make(map[token.Kind]PrefixParselet),
		infix:  make(map[token.Kind]InfixParselet),
	}

	// Префиксы.
	r.prefix[token.Ident] = identParselet{}
	r.prefix[token.IntLit] = literalParselet{kind: ast.ExprLitInt}
	r.prefix[token.FloatLit] = literalParselet{kind: ast.ExprLitFloat}
	r.prefix[token.KwTrue] = literalParselet{kind: ast.ExprLitBool}
	r.prefix[token.KwFalse] = literalParselet{kind: ast.ExprLitBool}
	r.prefix[token.Minus] = unaryParselet{op: ast.ExprUnaryMinus, prec: PrecNumericPrefix}
	r.prefix[token.LParen] = groupParselet{}
	r.prefix[token.KwIf] = inlineIfParselet{}

	// Инфиксы.
	bin := func(k token.Kind, op ast.ExprBinaryOp, prec Precedence) {
		r.infix[k] = binaryParselet{op: op, prec: prec}
	}
	bin(token.Plus, ast.ExprBinaryAdd, PrecAddSub)
	bin(token.Minus, ast.ExprBinarySub, PrecAddSub)
	bin(token.Star, ast.ExprBinaryMul, PrecMulDiv)
	bin(token.Slash, ast.ExprBinaryDiv, PrecMulDiv)
	bin(token.Percent, ast.ExprBinaryMod, PrecModulo)
	bin(token.EqEq, ast.ExprBinaryEq, PrecEquality)
	bin(token.BangEq, ast.ExprBinaryNotEq, PrecEquality)
	bin(token.Lt, ast.ExprBinaryLess, PrecCompare)
	bin(token.LtEq, ast.ExprBinaryLessEq, PrecCompare)
	bin(token.Gt, ast.ExprBinaryGreater, PrecCompare)
	bin(token.GtEq, ast.ExprBinaryGreaterEq, PrecCompare)

	asg := func(k token.Kind, op ast.ExprBinaryOp, compound bool) {
		r.infix[k] = assignParselet{op: op, compound: compound}
	}
	asg(token.Assign, ast.ExprBinaryAdd, false)
	asg(token.PlusAssign, ast.ExprBinaryAdd, true)
	asg(token.MinusAssign, ast.ExprBinarySub, true)
	asg(token.StarAssign, ast.ExprBinaryMul, true)
	asg(token.SlashAssign, ast.ExprBinaryDiv, true)
	asg(token.PercentAssign, ast.ExprBinaryMod, true)

	r.infix[token.LParen] = callParselet{}

	return r
}

// defaultRegistry строится один раз; дальше только чтение.
var defaultRegistry = newRegistry()
