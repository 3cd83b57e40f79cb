package parser

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// parseStmt — префиксная диспетчеризация по ведущему ключевому слову;
// выражение — вариант по умолчанию.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.PeekKind() {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwDo:
		return p.parseDoStmt()
	case token.KwIf:
		return p.parseIfStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoStmtID, false
	}
	span := p.exprSpan(expr)
	return p.arenas.Stmts.NewExpr(span, expr), true
}

// parseLetStmt — `let [mut] name [: Type] = expr`.
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance()
	isMut := false
	if p.at(token.KwMut) {
		p.advance()
		isMut = true
	}
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	typ := ast.NoTypeID
	if p.at(token.Colon) {
		p.advance()
		typ, ok = p.parseType()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after binding name"); !ok {
		return ast.NoStmtID, false
	}
	value, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoStmtID, false
	}
	span := letTok.Span.Cover(p.exprSpan(value))
	return p.arenas.Stmts.NewLet(span, name, nameSpan, isMut, typ, value), true
}

// parseReturnStmt — `return [expr]`; значение опционально.
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	retTok := p.advance()
	if p.atOr(token.Dedent, token.EOF) {
		return p.arenas.Stmts.NewReturn(retTok.Span, ast.NoExprID), true
	}
	value, ok := p.parseExpr(PrecReturn)
	if !ok {
		return ast.NoStmtID, false
	}
	span := retTok.Span.Cover(p.exprSpan(value))
	return p.arenas.Stmts.NewReturn(span, value), true
}

// parseDoStmt — `do` с отступным блоком либо строчной формой
// `do <stmt>`, которая оборачивается в блок из одного statement.
func (p *Parser) parseDoStmt() (ast.StmtID, bool) {
	doTok := p.advance()
	if p.at(token.Indent) {
		body, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		span := doTok.Span.Cover(p.stmtSpan(body))
		return p.arenas.Stmts.NewDo(span, body), true
	}
	inner, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	innerSpan := p.stmtSpan(inner)
	body := p.arenas.Stmts.NewBlock(innerSpan, []ast.StmtID{inner})
	span := doTok.Span.Cover(innerSpan)
	return p.arenas.Stmts.NewDo(span, body), true
}

// parseIfStmt — условная цепочка `if / else if / else` с отступными
// блоками. Форма `if cond => a else b` — выражение и уходит в
// inlineIfParselet через parseExprStmt.
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	ifTok := p.lx.Peek()
	cond, arrow, ok := p.parseIfHead()
	if !ok {
		return ast.NoStmtID, false
	}
	if arrow {
		// Строчная форма: дособираем выражение и заворачиваем в statement.
		return p.finishInlineIfStmt(ifTok, cond)
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	els := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			els, ok = p.parseIfStmt()
		} else {
			els, ok = p.parseBlock()
		}
		if !ok {
			return ast.NoStmtID, false
		}
	}
	end := then
	if els != ast.NoStmtID {
		end = els
	}
	span := ifTok.Span.Cover(p.stmtSpan(end))
	return p.arenas.Stmts.NewIf(span, cond, then, els), true
}

// parseIfHead съедает `if cond` и сообщает, началась ли строчная форма.
func (p *Parser) parseIfHead() (ast.ExprID, bool, bool) {
	p.advance() // if
	cond, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoExprID, false, false
	}
	if p.at(token.FatArrow) {
		p.advance()
		return cond, true, true
	}
	return cond, false, true
}

func (p *Parser) finishInlineIfStmt(ifTok token.Token, cond ast.ExprID) (ast.StmtID, bool) {
	then, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwElse, diag.SynUnexpectedToken, "inline conditional requires an 'else' branch"); !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.KwIf) {
		p.err(diag.SynInlineElseIf, "inline conditionals cannot chain 'else if'; nest with parentheses")
		return ast.NoStmtID, false
	}
	els, ok := p.parseExpr(PrecMin)
	if !ok {
		return ast.NoStmtID, false
	}
	span := ifTok.Span.Cover(p.exprSpan(els))
	expr := p.arenas.Exprs.NewIf(span, cond, then, els)
	return p.arenas.Stmts.NewExpr(span, expr), true
}

// parseBlock — отступный блок: Indent, statements, Dedent.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	if !p.enterNesting() {
		return ast.NoStmtID, false
	}
	defer p.leaveNesting()

	open, ok := p.expect(token.Indent, diag.SynUnexpectedToken, "expected an indented block")
	if !ok {
		return ast.NoStmtID, false
	}
	var stmts []ast.StmtID
	for !p.atOr(token.Dedent, token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		stmts = append(stmts, stmt)
	}
	close, ok := p.expect(token.Dedent, diag.SynUnexpectedToken, "expected end of indented block")
	if !ok {
		return ast.NoStmtID, false
	}
	span := open.Span.Cover(close.Span)
	return p.arenas.Stmts.NewBlock(span, stmts), true
}

func (p *Parser) stmtSpan(id ast.StmtID) source.Span {
	if s := p.arenas.Stmts.Get(id); s != nil {
		return s.Span
	}
	return p.lastSpan
}
