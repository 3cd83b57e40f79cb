package parser

import (
	"testing"

	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
)

func TestLetStatement(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isMut   bool
		hasType bool
	}{
		{"plain", "fn test()\n    let x = 1\n", false, false},
		{"mutable", "fn test()\n    let mut x = 1\n", true, false},
		{"typed", "fn test()\n    let x: int = 1\n", false, true},
		{"mutable_typed", "fn test()\n    let mut x: float = 1.5\n", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arenas, fileID, bag := parseSource(t, tt.input)
			requireNoErrors(t, bag)
			let := firstBodyLet(t, arenas, fileID)
			if let.IsMut != tt.isMut {
				t.Errorf("IsMut = %v, want %v", let.IsMut, tt.isMut)
			}
			if let.Type.IsValid() != tt.hasType {
				t.Errorf("Type.IsValid() = %v, want %v", let.Type.IsValid(), tt.hasType)
			}
			if !let.Value.IsValid() {
				t.Error("let must carry a value")
			}
		})
	}
}

func TestReturnStatement(t *testing.T) {
	t.Run("with_value", func(t *testing.T) {
		arenas, fileID, bag := parseSource(t, "fn test()\n    return 1 + 2\n")
		requireNoErrors(t, bag)
		stmts := bodyStmts(t, arenas, fileID)
		ret, ok := arenas.Stmts.Return(stmts[0])
		if !ok {
			t.Fatal("expected return statement")
		}
		if !ret.Value.IsValid() {
			t.Error("expected a return value")
		}
	})
	t.Run("bare", func(t *testing.T) {
		arenas, fileID, bag := parseSource(t, "fn test()\n    return\n")
		requireNoErrors(t, bag)
		stmts := bodyStmts(t, arenas, fileID)
		ret, ok := arenas.Stmts.Return(stmts[0])
		if !ok {
			t.Fatal("expected return statement")
		}
		if ret.Value.IsValid() {
			t.Error("bare return must not carry a value")
		}
	})
}

func TestDoBlock(t *testing.T) {
	arenas, fileID, bag := parseSource(t, "fn test()\n    do\n        let x = 1\n        x + 1\n")
	requireNoErrors(t, bag)
	stmts := bodyStmts(t, arenas, fileID)
	do, ok := arenas.Stmts.Do(stmts[0])
	if !ok {
		t.Fatal("expected do statement")
	}
	block, ok := arenas.Stmts.Block(do.Body)
	if !ok {
		t.Fatal("expected block body")
	}
	if len(block.Stmts) != 2 {
		t.Errorf("block statement count = %d, want 2", len(block.Stmts))
	}
}

// Строчная форма `do <stmt>` — блок ровно из одного statement.
func TestDoInline(t *testing.T) {
	arenas, fileID, bag := parseSource(t, "fn test()\n    do let x = 1\n")
	requireNoErrors(t, bag)
	stmts := bodyStmts(t, arenas, fileID)
	do, ok := arenas.Stmts.Do(stmts[0])
	if !ok {
		t.Fatal("expected do statement")
	}
	block, ok := arenas.Stmts.Block(do.Body)
	if !ok {
		t.Fatal("expected block body")
	}
	if len(block.Stmts) != 1 {
		t.Fatalf("inline do must wrap exactly one statement, got %d", len(block.Stmts))
	}
	if _, ok := arenas.Stmts.Let(block.Stmts[0]); !ok {
		t.Error("expected the wrapped let")
	}
}

func TestIfChain(t *testing.T) {
	input := "fn test()\n" +
		"    if a < 1\n" +
		"        return 1\n" +
		"    else if a < 2\n" +
		"        return 2\n" +
		"    else\n" +
		"        return 3\n"
	arenas, fileID, bag := parseSource(t, input)
	requireNoErrors(t, bag)
	stmts := bodyStmts(t, arenas, fileID)
	first, ok := arenas.Stmts.If(stmts[0])
	if !ok {
		t.Fatal("expected if statement")
	}
	second, ok := arenas.Stmts.If(first.Else)
	if !ok {
		t.Fatal("expected else-if link")
	}
	if _, ok := arenas.Stmts.Block(second.Else); !ok {
		t.Error("expected trailing else block")
	}
}

func TestCompoundAssignDesugaring(t *testing.T) {
	tests := []struct {
		name  string
		input string
		op    ast.ExprBinaryOp
	}{
		{"plus", "x += 1", ast.ExprBinaryAdd},
		{"minus", "x -= 1", ast.ExprBinarySub},
		{"star", "x *= 2", ast.ExprBinaryMul},
		{"slash", "x /= 2", ast.ExprBinaryDiv},
		{"percent", "x %= 2", ast.ExprBinaryMod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arenas, fileID, bag := parseSource(t, "fn test()\n    let mut x = 0\n    "+tt.input+"\n")
			requireNoErrors(t, bag)
			stmts := bodyStmts(t, arenas, fileID)
			es, ok := arenas.Stmts.Expr(stmts[1])
			if !ok {
				t.Fatal("expected expression statement")
			}
			asg, ok := arenas.Exprs.Assign(es.Expr)
			if !ok {
				t.Fatal("expected assignment")
			}
			bin, ok := arenas.Exprs.Binary(asg.Value)
			if !ok {
				t.Fatalf("expected desugared binary value")
			}
			if bin.Op != tt.op {
				t.Errorf("desugared op = %v, want %v", bin.Op, tt.op)
			}
			if _, ok := arenas.Exprs.Ident(bin.Left); !ok {
				t.Error("desugared left operand must re-read the target")
			}
		})
	}
}

func TestAssignRequiresLValue(t *testing.T) {
	_, _, bag := parseSource(t, "fn test()\n    1 + 2 = 3\n")
	if hasCode(bag, diag.SynExpectLValue) != 1 {
		t.Fatalf("expected one lvalue error, got: %s", diagnosticsSummary(bag))
	}
}

// Дедент посреди выражения — жёсткая ошибка.
func TestUnexpectedDeindent(t *testing.T) {
	_, _, bag := parseSource(t, "fn test()\n    let x =\nlet y = 1\n")
	if hasCode(bag, diag.SynUnexpectedDeindent) == 0 {
		t.Fatalf("expected unexpected-deindent error, got: %s", diagnosticsSummary(bag))
	}
}

// Ошибка в одном item не мешает разобрать следующий.
func TestResyncAfterBadItem(t *testing.T) {
	input := "fn bad()\n" +
		"    let = 1\n" +
		"fn good()\n" +
		"    return 1\n"
	arenas, fileID, bag := parseSource(t, input)
	if !bag.HasErrors() {
		t.Fatal("expected an error in the first item")
	}
	file := arenas.Files.Get(fileID)
	found := false
	for _, itemID := range file.Items {
		if fn, ok := arenas.Items.Fn(itemID); ok {
			if arenas.Strings.MustLookup(fn.Name) == "good" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected the second item to survive resynchronization")
	}
}

func TestNestingTooDeep(t *testing.T) {
	expr := ""
	for i := 0; i < 300; i++ {
		expr += "("
	}
	expr += "1"
	for i := 0; i < 300; i++ {
		expr += ")"
	}
	_, _, bag := parseSource(t, "fn test()\n    let x = "+expr+"\n")
	if hasCode(bag, diag.SynNestingTooDeep) == 0 {
		t.Fatalf("expected nesting-depth error, got: %s", diagnosticsSummary(bag))
	}
}

func firstBodyLet(t *testing.T, arenas *ast.Builder, fileID ast.FileID) *ast.StmtLetData {
	t.Helper()
	stmts := bodyStmts(t, arenas, fileID)
	let, ok := arenas.Stmts.Let(stmts[0])
	if !ok {
		t.Fatal("expected let statement")
	}
	return let
}

func bodyStmts(t *testing.T, arenas *ast.Builder, fileID ast.FileID) []ast.StmtID {
	t.Helper()
	file := arenas.Files.Get(fileID)
	if len(file.Items) == 0 {
		t.Fatal("expected at least one item")
	}
	fn, ok := arenas.Items.Fn(file.Items[0])
	if !ok {
		t.Fatal("expected fn item")
	}
	block, ok := arenas.Stmts.Block(fn.Body)
	if !ok {
		t.Fatal("expected block body")
	}
	if len(block.Stmts) == 0 {
		t.Fatal("expected a non-empty body")
	}
	return block.Stmts
}
