package symbols

import (
	"testing"

	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/lexer"
	"github.com/snirk-lang/protosnirk-sub001/internal/parser"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// resolveSource разбирает и разрешает input; парсинг обязан пройти чисто.
func resolveSource(t *testing.T, input string) (*ast.Builder, ast.FileID, *Resolution, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.snk", []byte(input))
	parseBag := diag.NewBag(128)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: parseBag}})
	arenas := ast.NewBuilder(ast.Hints{})
	pres := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: diag.BagReporter{Bag: parseBag}})
	if parseBag.HasErrors() {
		t.Fatalf("parse failed: %v", parseBag.Errors())
	}
	bag := diag.NewBag(128)
	res := ResolveFile(arenas, pres.File, Options{Reporter: diag.BagReporter{Bag: bag}})
	return arenas, pres.File, res, bag
}

func countCode(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}

// findVar находит символ переменной по имени.
func findVar(t *testing.T, arenas *ast.Builder, res *Resolution, name string) *Symbol {
	t.Helper()
	for _, sym := range res.Table.Symbols() {
		if sym.Kind == SymVar && arenas.Strings.MustLookup(sym.Name) == name {
			return sym
		}
	}
	t.Fatalf("variable %q not found in symbol table", name)
	return nil
}

// Сценарий: `let a = 0; let b = a + 1; a = a + b` внутри первой функции.
// a → [1 0], b → [1 1], присваивание метит a мутированной.
func TestScenarioAddressesAndMutation(t *testing.T) {
	input := "fn test()\n" +
		"    let a = 0\n" +
		"    let b = a + 1\n" +
		"    a = a + b\n"
	arenas, _, res, bag := resolveSource(t, input)

	a := findVar(t, arenas, res, "a")
	if !a.Addr.Equal(ScopeAddress{1, 0}) {
		t.Errorf("address of a = %v, want [1 0]", a.Addr)
	}
	b := findVar(t, arenas, res, "b")
	if !b.Addr.Equal(ScopeAddress{1, 1}) {
		t.Errorf("address of b = %v, want [1 1]", b.Addr)
	}
	if !a.Mutated {
		t.Error("a must be marked mutated by the reassignment")
	}
	// `a` объявлена немутабельной, значит присваивание — ошибка.
	if countCode(bag, diag.SemaAssignImmutable) != 1 {
		t.Errorf("expected one assign-to-immutable error, got %d", countCode(bag, diag.SemaAssignImmutable))
	}
}

func TestMutableAssignmentIsClean(t *testing.T) {
	input := "fn test()\n" +
		"    let mut a = 0\n" +
		"    a = a + 1\n" +
		"    return a\n"
	arenas, _, res, bag := resolveSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Errors())
	}
	a := findVar(t, arenas, res, "a")
	if !a.Mutated || !a.Read {
		t.Errorf("a flags = read %v / mutated %v, want both true", a.Read, a.Mutated)
	}
}

// Сценарий: `a = 1` без объявления — ровно один UndeclaredName и ни
// одной переменной в таблице.
func TestUndeclaredAssignTarget(t *testing.T) {
	_, _, res, bag := resolveSource(t, "fn test()\n    a = 1\n")
	if countCode(bag, diag.SemaUndeclaredName) != 1 {
		t.Fatalf("expected exactly one undeclared-name error, got %d", countCode(bag, diag.SemaUndeclaredName))
	}
	for _, sym := range res.Table.Symbols() {
		if sym.Kind == SymVar {
			t.Errorf("no variable entries expected, found %v", sym)
		}
	}
}

// Дубликаты-соседи: один диагноз, одна выжившая запись (поздняя), тот же
// адрес.
func TestDuplicateDeclaration(t *testing.T) {
	input := "fn test()\n" +
		"    let x = 1\n" +
		"    let x = 2\n" +
		"    return x\n"
	arenas, _, res, bag := resolveSource(t, input)
	if countCode(bag, diag.SemaDuplicateDeclaration) != 1 {
		t.Fatalf("expected exactly one duplicate-declaration error, got %d", countCode(bag, diag.SemaDuplicateDeclaration))
	}
	count := 0
	var survivor *Symbol
	for _, sym := range res.Table.Symbols() {
		if sym.Kind == SymVar && arenas.Strings.MustLookup(sym.Name) == "x" {
			count++
			survivor = sym
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one surviving entry for x, got %d", count)
	}
	if !survivor.Addr.Equal(ScopeAddress{1, 0}) {
		t.Errorf("survivor address = %v, want [1 0]", survivor.Addr)
	}
	// Диагноз должен ссылаться на первое объявление.
	for _, d := range bag.Items() {
		if d.Code == diag.SemaDuplicateDeclaration && len(d.Notes) == 0 {
			t.Error("duplicate-declaration diagnostic must reference the prior declaration")
		}
	}
}

// Ошибка про мутацию иммутабельной привязки несёт note на объявление.
func TestAssignImmutableCarriesDeclNote(t *testing.T) {
	input := "fn test()\n" +
		"    let a = 0\n" +
		"    a = 1\n"
	_, _, _, bag := resolveSource(t, input)

	found := false
	for _, d := range bag.Items() {
		if d.Code != diag.SemaAssignImmutable {
			continue
		}
		found = true
		if len(d.Notes) != 1 {
			t.Fatalf("expected one note on the error, got %d", len(d.Notes))
		}
	}
	if !found {
		t.Fatal("assign-to-immutable error not reported")
	}
}

// Нулевой Reporter — валидный вариант: ошибки считаются, паники нет.
func TestResolveWithoutReporter(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.snk", []byte("fn test()\n    return missing\n"))
	parseBag := diag.NewBag(128)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: parseBag}})
	arenas := ast.NewBuilder(ast.Hints{})
	pres := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: diag.BagReporter{Bag: parseBag}})
	if parseBag.HasErrors() {
		t.Fatalf("parse failed: %v", parseBag.Errors())
	}

	res := ResolveFile(arenas, pres.File, Options{})
	if !res.HasErrors() {
		t.Fatal("undeclared reference must be counted even without a reporter")
	}
}

// Функция может звать функцию, объявленную ниже по файлу.
func TestForwardFunctionReference(t *testing.T) {
	input := "fn caller() -> int\n" +
		"    return callee()\n" +
		"fn callee() -> int\n" +
		"    return 1\n"
	_, _, _, bag := resolveSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("forward reference must resolve: %v", bag.Errors())
	}
}

// Локальная переменная, использованная до объявления, — ошибка, не
// forward reference.
func TestLocalForwardReferenceFails(t *testing.T) {
	input := "fn test()\n" +
		"    let a = b\n" +
		"    let b = 1\n" +
		"    return a + b\n"
	_, _, _, bag := resolveSource(t, input)
	if countCode(bag, diag.SemaUndeclaredName) != 1 {
		t.Fatalf("expected one undeclared-name error, got: %v", bag.Items())
	}
}

// Затенение внешней области легально; внутренняя привязка живёт на
// новом уровне адреса.
func TestShadowingOuterScope(t *testing.T) {
	input := "fn test()\n" +
		"    let x = 1\n" +
		"    do\n" +
		"        let x = 2\n" +
		"        return x\n" +
		"    return x\n"
	arenas, _, res, bag := resolveSource(t, input)
	if countCode(bag, diag.SemaDuplicateDeclaration) != 0 {
		t.Fatalf("shadowing must not be a duplicate: %v", bag.Items())
	}
	var addrs []ScopeAddress
	for _, sym := range res.Table.Symbols() {
		if sym.Kind == SymVar && arenas.Strings.MustLookup(sym.Name) == "x" {
			addrs = append(addrs, sym.Addr)
		}
	}
	if len(addrs) != 2 {
		t.Fatalf("expected two distinct bindings of x, got %d", len(addrs))
	}
	if addrs[0].Equal(addrs[1]) {
		t.Error("shadowing bindings must have distinct addresses")
	}
	if addrs[1].Depth() <= addrs[0].Depth() {
		t.Errorf("inner binding must be deeper: %v vs %v", addrs[1], addrs[0])
	}
}

// Адреса соседних блоков не пересекаются: блок потребляет слот родителя.
func TestSiblingBlocksDoNotCollide(t *testing.T) {
	input := "fn test()\n" +
		"    do\n" +
		"        let a = 1\n" +
		"        return a\n" +
		"    do\n" +
		"        let b = 2\n" +
		"        return b\n"
	arenas, _, res, _ := resolveSource(t, input)
	a := findVar(t, arenas, res, "a")
	b := findVar(t, arenas, res, "b")
	if a.Addr.Equal(b.Addr) {
		t.Errorf("sibling block bindings collide at %v", a.Addr)
	}
	if a.Addr.Compare(b.Addr) >= 0 {
		t.Errorf("declaration order broken: %v not before %v", a.Addr, b.Addr)
	}
}

func TestPreludeTypesResolve(t *testing.T) {
	input := "fn test(n: int) -> int\n" +
		"    let x: float = 1.5\n" +
		"    return n\n"
	_, _, _, bag := resolveSource(t, input)
	if countCode(bag, diag.SemaUndeclaredName) != 0 {
		t.Fatalf("prelude names must resolve: %v", bag.Items())
	}
}

func TestTypedefResolves(t *testing.T) {
	input := "typedef age = int\n" +
		"fn test(n: age) -> age\n" +
		"    return n\n"
	_, _, _, bag := resolveSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("typedef must resolve: %v", bag.Errors())
	}
}

func TestUnknownTypeName(t *testing.T) {
	input := "fn test()\n    let x: missing = 1\n"
	_, _, _, bag := resolveSource(t, input)
	if countCode(bag, diag.SemaUndeclaredName) != 1 {
		t.Fatalf("expected one undeclared type error, got: %v", bag.Items())
	}
}

func TestMustAccessorPanicsWhenUnresolved(t *testing.T) {
	res := newResolution()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on reading an unresolved address")
		}
	}()
	res.MustExprAddr(ast.ExprID(42))
}
