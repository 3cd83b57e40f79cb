package symbols

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// DefaultPrelude — имена примитивных типов, засеваемые во внешнюю
// область перед разрешением; никакого глобального состояния.
var DefaultPrelude = []string{"int", "float", "bool", "unit"}

type Options struct {
	Reporter diag.Reporter
	// Prelude overrides DefaultPrelude; empty slice disables seeding.
	Prelude []string
}

// resolver — состояние одного прохода по файлу.
type resolver struct {
	arenas *ast.Builder
	opts   Options
	res    *Resolution
	scopes scopeStack
	addr   ScopeAddress
}

// ResolveFile выполняет два прохода по файлу: предварительный по
// top-level объявлениям (forward references) и основной по телам.
// Ошибки разрешения никогда не прерывают проход. Линты добавляются
// только если проход не дал ни одной ошибки.
func ResolveFile(arenas *ast.Builder, fileID ast.FileID, opts Options) *Resolution {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	r := resolver{
		arenas: arenas,
		opts:   opts,
		res:    newResolution(),
		addr:   NewScopeAddress(),
	}
	// Прелюдия живёт в собственной внешней области, поэтому итем с
	// именем примитива затеняет её, а не конфликтует.
	r.scopes.push()
	r.seedPrelude()
	r.scopes.push()

	file := arenas.Files.Get(fileID)
	if file == nil {
		return r.res
	}

	// Проход 1: адреса всех top-level объявлений.
	for _, itemID := range file.Items {
		r.declareItem(itemID)
	}
	// Проход 2: тела.
	for _, itemID := range file.Items {
		r.resolveItemBody(itemID)
	}

	if r.res.errors == 0 {
		r.lint()
	}
	return r.res
}

// seedPrelude кладёт примитивные имена в корневую область на уровне,
// который потребляет нулевой слот корня: int=[0.0], float=[0.1] и т.д.
// Итемы начинаются с [1] и не пересекаются c ними.
func (r *resolver) seedPrelude() {
	names := r.opts.Prelude
	if names == nil {
		names = DefaultPrelude
	}
	r.addr.Push()
	for _, name := range names {
		id := r.arenas.Strings.Intern(name)
		sym := &Symbol{
			Name: id,
			Kind: SymType,
			Addr: r.addr.Clone(),
			Read: true,
		}
		r.scopes.bind(id, sym.Addr)
		r.res.Table.Insert(sym)
		r.addr.Increment()
	}
	r.addr.Pop()
}

// declareItem — предварительный проход: итем получает адрес уровня
// юнита, что и делает возможными ссылки вперёд.
func (r *resolver) declareItem(itemID ast.ItemID) {
	item := r.arenas.Items.Get(itemID)
	if item == nil {
		return
	}
	var (
		name source.StringID
		span source.Span
		kind SymbolKind
	)
	switch item.Kind {
	case ast.ItemFn:
		fn, _ := r.arenas.Items.Fn(itemID)
		name, span, kind = fn.Name, fn.NameSpan, SymFn
	case ast.ItemTypedef:
		td, _ := r.arenas.Items.Typedef(itemID)
		name, span, kind = td.Name, td.NameSpan, SymType
	default:
		return
	}
	r.addr.Increment()
	addr := r.declare(name, span, kind, false)
	r.res.itemAddrs[itemID] = addr
}

func (r *resolver) resolveItemBody(itemID ast.ItemID) {
	item := r.arenas.Items.Get(itemID)
	if item == nil {
		return
	}
	switch item.Kind {
	case ast.ItemFn:
		r.resolveFnBody(itemID)
	case ast.ItemTypedef:
		td, _ := r.arenas.Items.Typedef(itemID)
		r.resolveType(td.Type)
	}
}

// resolveFnBody — параметры и statements тела живут в одной области
// функции; её адресный уровень надстроен над слотом итема.
func (r *resolver) resolveFnBody(itemID ast.ItemID) {
	fn, ok := r.arenas.Items.Fn(itemID)
	if !ok {
		return
	}
	saved := r.addr
	r.addr = r.res.itemAddrs[itemID].Clone()
	r.scopes.push()
	r.addr.Push()

	for _, paramID := range fn.Params {
		param := r.arenas.Items.Param(paramID)
		r.resolveType(param.Type)
		addr := r.declare(param.Name, param.NameSpan, SymParam, false)
		r.res.paramAddrs[paramID] = addr
	}
	r.resolveType(fn.ReturnType)
	if block, ok := r.arenas.Stmts.Block(fn.Body); ok {
		for _, stmtID := range block.Stmts {
			r.resolveStmt(stmtID)
		}
	}

	r.scopes.pop()
	r.addr = saved
}

// declare — привязка имени в текущей области. Повторное объявление в
// той же (и только той же) области — ошибка; новая привязка замещает
// прежнюю по тому же адресу, чтобы более ранние ссылки остались в силе.
func (r *resolver) declare(name source.StringID, span source.Span, kind SymbolKind, mutable bool) ScopeAddress {
	text := r.arenas.Strings.MustLookup(name)
	if prior, ok := r.scopes.lookupInnermost(name); ok {
		rb := r.errorAt(diag.SemaDuplicateDeclaration, span,
			"\""+text+"\" is already declared in this scope")
		if priorSym, ok := r.res.Table.Lookup(prior); ok {
			rb.WithNote(priorSym.DeclSpan, "previous declaration of \""+text+"\"")
		}
		rb.Emit()
		sym := &Symbol{Name: name, Kind: kind, Addr: prior, DeclSpan: span, Mutable: mutable}
		r.res.Table.Insert(sym)
		return prior
	}
	addr := r.addr.Clone()
	sym := &Symbol{Name: name, Kind: kind, Addr: addr, DeclSpan: span, Mutable: mutable}
	r.scopes.bind(name, addr)
	r.res.Table.Insert(sym)
	r.addr.Increment()
	return addr
}

// enterScope/leaveScope — вложенный блок. Блок потребляет один слот
// родительского уровня, поэтому после выхода уровень продвигается:
// адреса соседних блоков не пересекаются.
func (r *resolver) enterScope() {
	r.scopes.push()
	r.addr.Push()
}

func (r *resolver) leaveScope() {
	r.scopes.pop()
	r.addr.Pop()
	r.addr.Increment()
}

// errorAt заводит билдер ошибки; вызывающий добавляет notes и делает Emit.
func (r *resolver) errorAt(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	r.res.errors++
	return diag.ReportError(r.opts.Reporter, code, sp, msg)
}
