package diag

import (
	"testing"

	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

func mkDiag(code Code, sev Severity, start uint32) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  "msg",
		Primary:  source.Span{File: 1, Start: start, End: start + 1},
	}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(mkDiag(SynUnexpectedToken, SevError, 0)) {
		t.Fatal("first Add rejected")
	}
	if !bag.Add(mkDiag(SynUnexpectedToken, SevError, 1)) {
		t.Fatal("second Add rejected")
	}
	if bag.Add(mkDiag(SynUnexpectedToken, SevError, 2)) {
		t.Fatal("Add over the limit accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

// Лимит больше uint16 не должен заворачиваться в ноль.
func TestBagLimitClamped(t *testing.T) {
	bag := NewBag(1 << 20)
	if bag.Cap() != 65535 {
		t.Fatalf("Cap = %d, want 65535", bag.Cap())
	}
	if !bag.Add(mkDiag(SynUnexpectedToken, SevError, 0)) {
		t.Fatal("Add rejected under a clamped limit")
	}

	if neg := NewBag(-1); neg.Add(mkDiag(SynUnexpectedToken, SevError, 0)) {
		t.Fatal("negative limit must reject everything")
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(LintUnusedVariable, SevLint, 0))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("lint alone must not count as error or warning")
	}

	bag.Add(mkDiag(SemaUndeclaredName, SevWarning, 1))
	if bag.HasErrors() {
		t.Fatal("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatal("HasWarnings missed the warning")
	}

	bag.Add(mkDiag(SynUnexpectedToken, SevError, 2))
	if !bag.HasErrors() {
		t.Fatal("HasErrors missed the error")
	}
	if len(bag.Errors()) != 1 || len(bag.Warnings()) != 1 || len(bag.Lints()) != 1 {
		t.Fatalf("severity buckets = %d/%d/%d, want 1/1/1",
			len(bag.Errors()), len(bag.Warnings()), len(bag.Lints()))
	}
}

func TestBagSortIsPositional(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SynExpectExpression, SevError, 20))
	bag.Add(mkDiag(LintUnusedVariable, SevLint, 5))
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 5))
	bag.Sort()

	items := bag.Items()
	if items[0].Primary.Start != 5 || items[1].Primary.Start != 5 || items[2].Primary.Start != 20 {
		t.Fatalf("not sorted by offset: %v", items)
	}
	// На одном offset ошибка раньше линта.
	if items[0].Severity != SevError || items[1].Severity != SevLint {
		t.Fatalf("severity tie-break wrong: %v then %v", items[0].Severity, items[1].Severity)
	}
}

func TestBagFilter(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(LintUnusedVariable, SevLint, 0))
	bag.Add(mkDiag(LintUnusedMutable, SevLint, 1))
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 2))

	bag.Filter(func(d Diagnostic) bool { return d.Code != LintUnusedMutable })

	if bag.Len() != 2 {
		t.Fatalf("Len after Filter = %d, want 2", bag.Len())
	}
	for _, d := range bag.Items() {
		if d.Code == LintUnusedMutable {
			t.Fatal("filtered diagnostic still present")
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 3))
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 3))
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 4))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(mkDiag(SynUnexpectedToken, SevError, 0))
	b := NewBag(1)
	b.Add(mkDiag(SynExpectExpression, SevError, 1))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len after Merge = %d, want 2", a.Len())
	}
}

func TestReportBuilderNotes(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}

	ReportError(r, SemaDuplicateDeclaration, source.Span{File: 1, Start: 10, End: 11}, "duplicate declaration of `x`").
		WithNote(source.Span{File: 1, Start: 2, End: 3}, "previous declaration is here").
		Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != SevError || d.Code != SemaDuplicateDeclaration {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "previous declaration is here" {
		t.Fatalf("note not attached: %+v", d.Notes)
	}
}
