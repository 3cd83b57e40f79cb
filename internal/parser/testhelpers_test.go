package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/lexer"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// parseSource разбирает input как целый файл и возвращает арены и bag.
func parseSource(t *testing.T, input string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.snk", []byte(input))
	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})
	res := ParseFile(fs, lx, arenas, Options{Reporter: reporter})
	return arenas, res.File, bag
}

// parseExprInput оборачивает выражение в тело функции и достаёт
// значение первого let.
func parseExprInput(t *testing.T, expr string) (*ast.Builder, ast.ExprID, *diag.Bag) {
	t.Helper()
	input := "fn test()\n    let x = " + expr + "\n"
	arenas, fileID, bag := parseSource(t, input)
	file := arenas.Files.Get(fileID)
	if len(file.Items) != 1 {
		t.Fatalf("expected 1 item, got %d (diags: %s)", len(file.Items), diagnosticsSummary(bag))
	}
	fn, ok := arenas.Items.Fn(file.Items[0])
	if !ok {
		t.Fatal("expected fn item")
	}
	block, ok := arenas.Stmts.Block(fn.Body)
	if !ok {
		t.Fatal("expected block body")
	}
	if len(block.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Stmts))
	}
	let, ok := arenas.Stmts.Let(block.Stmts[0])
	if !ok {
		t.Fatal("expected let statement")
	}
	return arenas, let.Value, bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code, d.Message)
	}
	return strings.Join(lines, "; ")
}

func requireNoErrors(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
}

func hasCode(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}
