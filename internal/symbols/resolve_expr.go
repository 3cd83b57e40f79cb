package symbols

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
)

func (r *resolver) resolveExpr(exprID ast.ExprID) {
	if !exprID.IsValid() {
		return
	}
	expr := r.arenas.Exprs.Get(exprID)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
		r.resolveReference(exprID)
	case ast.ExprLit:
		// ничего не разрешаем
	case ast.ExprUnary:
		un, _ := r.arenas.Exprs.Unary(exprID)
		r.resolveExpr(un.Operand)
	case ast.ExprBinary:
		bin, _ := r.arenas.Exprs.Binary(exprID)
		r.resolveExpr(bin.Left)
		r.resolveExpr(bin.Right)
	case ast.ExprAssign:
		r.resolveAssign(exprID)
	case ast.ExprCall:
		call, _ := r.arenas.Exprs.Call(exprID)
		r.resolveExpr(call.Callee)
		for _, arg := range call.Args {
			r.resolveExpr(arg)
		}
	case ast.ExprGroup:
		grp, _ := r.arenas.Exprs.Group(exprID)
		r.resolveExpr(grp.Inner)
	case ast.ExprIf:
		iff, _ := r.arenas.Exprs.If(exprID)
		r.resolveExpr(iff.Cond)
		r.resolveExpr(iff.Then)
		r.resolveExpr(iff.Else)
	}
}

// resolveReference — чтение имени: поиск от внутренней области к
// внешней, первый матч выигрывает. Промах — UndeclaredName; адрес узла
// остаётся незаполненным, и дальнейшие проходы не репортят его повторно.
func (r *resolver) resolveReference(exprID ast.ExprID) {
	ident, ok := r.arenas.Exprs.Ident(exprID)
	if !ok {
		return
	}
	expr := r.arenas.Exprs.Get(exprID)
	addr, ok := r.scopes.lookup(ident.Name)
	if !ok {
		text := r.arenas.Strings.MustLookup(ident.Name)
		r.errorAt(diag.SemaUndeclaredName, expr.Span,
			"undeclared name \""+text+"\"").Emit()
		return
	}
	r.res.exprAddrs[exprID] = addr
	if sym, ok := r.res.Table.Lookup(addr); ok {
		sym.Read = true
	}
}

// resolveAssign — мутация цели. Цель не считается прочитанной: чтение
// при составном присваивании происходит через десахаренный правый
// операнд.
func (r *resolver) resolveAssign(exprID ast.ExprID) {
	asg, ok := r.arenas.Exprs.Assign(exprID)
	if !ok {
		return
	}
	r.resolveExpr(asg.Value)

	target, ok := r.arenas.Exprs.Ident(asg.Target)
	if !ok {
		return
	}
	targetExpr := r.arenas.Exprs.Get(asg.Target)
	addr, ok := r.scopes.lookup(target.Name)
	if !ok {
		text := r.arenas.Strings.MustLookup(target.Name)
		r.errorAt(diag.SemaUndeclaredName, targetExpr.Span,
			"undeclared name \""+text+"\"").Emit()
		return
	}
	r.res.exprAddrs[asg.Target] = addr
	sym, ok := r.res.Table.Lookup(addr)
	if !ok {
		return
	}
	if !sym.Mutable {
		text := r.arenas.Strings.MustLookup(target.Name)
		r.errorAt(diag.SemaAssignImmutable, targetExpr.Span,
			"cannot assign to immutable \""+text+"\"").
			WithNote(sym.DeclSpan, "\""+text+"\" declared immutable here").
			Emit()
	}
	// Метим мутацию в любом случае, чтобы не каскадировать ошибки.
	sym.Mutated = true
}
