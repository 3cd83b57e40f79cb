package parser

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// parseExpr — ядро precedence climbing.
// Разбирает префиксную продукцию, затем расширяет её инфиксами, пока
// приоритет следующего оператора строго больше min.
func (p *Parser) parseExpr(min Precedence) (ast.ExprID, bool) {
	if !p.enterNesting() {
		return ast.NoExprID, false
	}
	defer p.leaveNesting()

	left, ok := p.parsePrefix()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		kind := p.lx.PeekKind()
		pl, has := p.registry.Infix(kind)
		if !has || pl.Precedence() <= min {
			return left, true
		}
		tok := p.advance()
		left, ok = pl.Parse(p, left, tok)
		if !ok {
			return ast.NoExprID, false
		}
	}
}

func (p *Parser) parsePrefix() (ast.ExprID, bool) {
	kind := p.lx.PeekKind()
	if kind == token.Dedent {
		p.err(diag.SynUnexpectedDeindent, "unexpected end of indented block")
		return ast.NoExprID, false
	}
	pl, ok := p.registry.Prefix(kind)
	if !ok {
		p.err(diag.SynExpectExpression, "expected expression, got \""+p.lx.Peek().Text+"\"")
		return ast.NoExprID, false
	}
	tok := p.advance()
	return pl.Parse(p, tok)
}

// exprSpan — span уже построенного выражения.
func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}

type identParselet struct{}

func (identParselet) Parse(p *Parser, tok token.Token) (ast.ExprID, bool) {
	name := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewIdent(tok.Span, name), true
}

type literalParselet struct {
	kind ast.ExprLitKind
}

func (l literalParselet) Parse(p *Parser, tok token.Token) (ast.ExprID, bool) {
	value := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, l.kind, value), true
}

type unaryParselet struct {
	op   ast.ExprUnaryOp
	prec Precedence
}

func (u unaryParselet) Parse(p *Parser, tok token.Token) (ast.ExprID, bool) {
	// Операнд связывается на приоритете самого префикса: `-a * b`
	// разбирается как `(-a) * b`.
	operand, ok := p.parseExpr(u.prec)
	if !ok {
		return ast.NoExprID, false
	}
	span := tok.Span.Cover(p.exprSpan(operand))
	return p.arenas.Exprs.NewUnary(span, u.op, operand, uint8(u.prec)), true
}

// groupParselet — скобочная группа `(expr)` и unit-литерал `()`.
type groupParselet struct{}

func (groupParselet) Parse(p *Parser, tok token.Token) (ast.ExprID, bool) {
	if p.at(token.RParen) {
		close := p.advance()
		span := tok.Span.Cover(close.Span)
		unit := p.arenas.Strings.Intern("()")
		return p.arenas.Exprs.NewLiteral(span, ast.ExprLitUnit, unit), true
	}
	inner, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoExprID, false
	}
	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	if !ok {
		return ast.NoExprID, false
	}
	span := tok.Span.Cover(close.Span)
	return p.arenas.Exprs.NewGroup(span, inner), true
}

type binaryParselet struct {
	op   ast.ExprBinaryOp
	prec Precedence
}

func (b binaryParselet) Precedence() Precedence { return b.prec }

func (b binaryParselet) Parse(p *Parser, left ast.ExprID, _ token.Token) (ast.ExprID, bool) {
	// Левая ассоциативность: правая часть на нашем же приоритете.
	right, ok := p.parseExpr(b.prec)
	if !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(left).Cover(p.exprSpan(right))
	return p.arenas.Exprs.NewBinary(span, b.op, left, right), true
}

// assignParselet — `x = e` и составные формы `x += e` и т.п.;
// составные немедленно десахариваются в `x = x OP e`.
type assignParselet struct {
	op       ast.ExprBinaryOp
	compound bool
}

func (assignParselet) Precedence() Precedence { return PrecAssign }

func (a assignParselet) Parse(p *Parser, left ast.ExprID, tok token.Token) (ast.ExprID, bool) {
	target := p.arenas.Exprs.Get(left)
	if target == nil || target.Kind != ast.ExprIdent {
		sp := p.exprSpan(left)
		p.errAt(diag.SynExpectLValue, sp, "left side of \""+tok.Text+"\" must be a name")
		return ast.NoExprID, false
	}
	// Правая ассоциативность: `a = b = c` → `a = (b = c)`.
	right, ok := p.parseExpr(PrecAssign - 1)
	if !ok {
		return ast.NoExprID, false
	}
	value := right
	if a.compound {
		ident, _ := p.arenas.Exprs.Ident(left)
		read := p.arenas.Exprs.NewIdent(target.Span, ident.Name)
		span := target.Span.Cover(p.exprSpan(right))
		value = p.arenas.Exprs.NewBinary(span, a.op, read, right)
	}
	span := target.Span.Cover(p.exprSpan(right))
	return p.arenas.Exprs.NewAssign(span, left, value), true
}

// callParselet — вызов `callee(arg, ...)`.
type callParselet struct{}

func (callParselet) Precedence() Precedence { return PrecParen }

func (callParselet) Parse(p *Parser, left ast.ExprID, _ token.Token) (ast.ExprID, bool) {
	var args []ast.ExprID
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr(PrecMin)
		if !ok {
			return ast.NoExprID, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
	if !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(left).Cover(close.Span)
	return p.arenas.Exprs.NewCall(span, left, args), true
}

// inlineIfParselet — строчный условный `if c => a else b`.
type inlineIfParselet struct{}

func (inlineIfParselet) Parse(p *Parser, tok token.Token) (ast.ExprID, bool) {
	cond, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' in inline conditional"); !ok {
		return ast.NoExprID, false
	}
	then, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.KwElse, diag.SynUnexpectedToken, "inline conditional requires an 'else' branch"); !ok {
		return ast.NoExprID, false
	}
	if p.at(token.KwIf) {
		p.err(diag.SynInlineElseIf, "inline conditionals cannot chain 'else if'; nest with parentheses")
		return ast.NoExprID, false
	}
	els, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoExprID, false
	}
	span := tok.Span.Cover(p.exprSpan(els))
	return p.arenas.Exprs.NewIf(span, cond, then, els), true
}
