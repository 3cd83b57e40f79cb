package symbols

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
)

func (r *resolver) resolveStmt(stmtID ast.StmtID) {
	stmt := r.arenas.Stmts.Get(stmtID)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtExpr:
		es, _ := r.arenas.Stmts.Expr(stmtID)
		r.resolveExpr(es.Expr)
	case ast.StmtLet:
		r.resolveLet(stmtID)
	case ast.StmtReturn:
		ret, _ := r.arenas.Stmts.Return(stmtID)
		if ret.Value.IsValid() {
			r.resolveExpr(ret.Value)
		}
	case ast.StmtIf:
		r.resolveIf(stmtID)
	case ast.StmtDo:
		do, _ := r.arenas.Stmts.Do(stmtID)
		r.resolveBlock(do.Body)
	case ast.StmtBlock:
		r.resolveBlock(stmtID)
	}
}

// resolveLet: инициализатор разрешается до объявления имени, поэтому
// `let a = a` ссылается на внешнее `a`, а не на себя.
func (r *resolver) resolveLet(stmtID ast.StmtID) {
	let, ok := r.arenas.Stmts.Let(stmtID)
	if !ok {
		return
	}
	r.resolveExpr(let.Value)
	r.resolveType(let.Type)
	addr := r.declare(let.Name, let.NameSpan, SymVar, let.IsMut)
	r.res.stmtAddrs[stmtID] = addr
}

func (r *resolver) resolveIf(stmtID ast.StmtID) {
	iff, ok := r.arenas.Stmts.If(stmtID)
	if !ok {
		return
	}
	r.resolveExpr(iff.Cond)
	r.resolveBlock(iff.Then)
	if iff.Else.IsValid() {
		// Звено else-if — снова if statement в текущей области;
		// else-блок — отдельная область.
		r.resolveStmt(iff.Else)
	}
}

// resolveBlock — блок как лексическая область.
func (r *resolver) resolveBlock(stmtID ast.StmtID) {
	block, ok := r.arenas.Stmts.Block(stmtID)
	if !ok {
		return
	}
	r.enterScope()
	for _, id := range block.Stmts {
		r.resolveStmt(id)
	}
	r.leaveScope()
}

// resolveType — ссылка на имя типа; NoTypeID — отсутствие аннотации.
func (r *resolver) resolveType(typeID ast.TypeID) {
	if !typeID.IsValid() {
		return
	}
	typ := r.arenas.Types.Get(typeID)
	addr, ok := r.scopes.lookup(typ.Name)
	if !ok {
		text := r.arenas.Strings.MustLookup(typ.Name)
		r.errorAt(diag.SemaUndeclaredName, typ.Span,
			"undeclared type name \""+text+"\"").Emit()
		return
	}
	r.res.typeAddrs[typeID] = addr
	if sym, ok := r.res.Table.Lookup(addr); ok {
		sym.Read = true
	}
}
