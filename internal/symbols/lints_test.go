package symbols

import (
	"testing"

	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
)

func TestUnusedVariableLint(t *testing.T) {
	input := "fn test()\n" +
		"    let x = 1\n"
	_, _, _, bag := resolveSource(t, input)

	if got := countCode(bag, diag.LintUnusedVariable); got != 1 {
		t.Fatalf("LintUnusedVariable count = %d, want 1", got)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Errors())
	}
}

func TestUnusedMutableLint(t *testing.T) {
	// x читается, но ни разу не переприсваивается после объявления
	input := "fn test() -> int\n" +
		"    let mut x = 1\n" +
		"    return x\n"
	_, _, _, bag := resolveSource(t, input)

	if got := countCode(bag, diag.LintUnusedMutable); got != 1 {
		t.Fatalf("LintUnusedMutable count = %d, want 1", got)
	}
	if got := countCode(bag, diag.LintUnusedVariable); got != 0 {
		t.Fatalf("read variable must not be reported unused, got %d lints", got)
	}
}

func TestMutatedMutableIsClean(t *testing.T) {
	input := "fn test() -> int\n" +
		"    let mut x = 1\n" +
		"    x = 2\n" +
		"    return x\n"
	_, _, _, bag := resolveSource(t, input)

	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %v", bag.Items())
	}
}

func TestLintsSuppressedAfterErrors(t *testing.T) {
	// y не объявлена: проход с ошибкой не должен выдавать линты про x
	input := "fn test()\n" +
		"    let x = y\n"
	_, _, _, bag := resolveSource(t, input)

	if got := countCode(bag, diag.SemaUndeclaredName); got != 1 {
		t.Fatalf("SemaUndeclaredName count = %d, want 1", got)
	}
	if got := len(bag.Lints()); got != 0 {
		t.Fatalf("lints on an erroring pass: %v", bag.Lints())
	}
}

func TestLintsEmittedInDeclarationOrder(t *testing.T) {
	input := "fn test()\n" +
		"    let a = 1\n" +
		"    let b = 2\n"
	_, _, _, bag := resolveSource(t, input)

	lints := bag.Lints()
	if len(lints) != 2 {
		t.Fatalf("lint count = %d, want 2", len(lints))
	}
	if lints[0].Primary.Start >= lints[1].Primary.Start {
		t.Fatal("lints must follow declaration order")
	}
}

func TestCompoundAssignMarksReadAndMutated(t *testing.T) {
	input := "fn test()\n" +
		"    let mut y = 0\n" +
		"    y += 1\n"
	arenas, _, res, bag := resolveSource(t, input)

	y := findVar(t, arenas, res, "y")
	if !y.Read || !y.Mutated {
		t.Fatalf("y read=%v mutated=%v, want both true", y.Read, y.Mutated)
	}
	if got := len(bag.Lints()); got != 0 {
		t.Fatalf("unexpected lints: %v", bag.Lints())
	}
}

func TestParamsAreNotLinted(t *testing.T) {
	input := "fn test(a: int) -> int\n" +
		"    return 1\n"
	_, _, _, bag := resolveSource(t, input)

	if got := len(bag.Lints()); got != 0 {
		t.Fatalf("params must not trip usage lints: %v", bag.Lints())
	}
}
