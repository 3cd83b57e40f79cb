package parser

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// parseFnItem — `fn name(param: Type, ...) [-> Type]` с отступным телом.
func (p *Parser) parseFnItem() (ast.ItemID, bool) {
	fnTok := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return ast.NoItemID, false
	}
	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoItemID, false
	}
	ret := ast.NoTypeID
	if p.at(token.Arrow) {
		p.advance()
		ret, ok = p.parseType()
		if !ok {
			return ast.NoItemID, false
		}
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoItemID, false
	}
	span := fnTok.Span.Cover(p.stmtSpan(body))
	return p.arenas.Items.NewFn(span, name, nameSpan, params, ret, body), true
}

func (p *Parser) parseFnParams() ([]ast.FnParamID, bool) {
	var params []ast.FnParamID
	for !p.at(token.RParen) {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		typ := ast.NoTypeID
		if p.at(token.Colon) {
			p.advance()
			typ, ok = p.parseType()
			if !ok {
				return nil, false
			}
		}
		params = append(params, p.arenas.Items.NewParam(name, nameSpan, typ))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}

// parseTypedefItem — `typedef Name = Type`.
func (p *Parser) parseTypedefItem() (ast.ItemID, bool) {
	tdTok := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after typedef name"); !ok {
		return ast.NoItemID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoItemID, false
	}
	span := tdTok.Span.Cover(p.arenas.Types.Get(typ).Span)
	return p.arenas.Items.NewTypedef(span, name, nameSpan, typ), true
}

// parseType — именованный тип либо unit `()`.
func (p *Parser) parseType() (ast.TypeID, bool) {
	if p.at(token.LParen) {
		open := p.advance()
		close, ok := p.expect(token.RParen, diag.SynExpectType, "expected ')' in unit type")
		if !ok {
			return ast.NoTypeID, false
		}
		span := open.Span.Cover(close.Span)
		return p.arenas.Types.NewNamed(span, p.arenas.Strings.Intern("unit")), true
	}
	if !p.at(token.Ident) {
		p.err(diag.SynExpectType, "expected type name, got \""+p.lx.Peek().Text+"\"")
		return ast.NoTypeID, false
	}
	tok := p.advance()
	return p.arenas.Types.NewNamed(tok.Span, p.arenas.Strings.Intern(tok.Text)), true
}
