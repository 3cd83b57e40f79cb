package source

import "testing"

func TestInternDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("bar")
	c := in.Intern("foo")

	if a == b {
		t.Fatal("distinct strings share an ID")
	}
	if a != c {
		t.Fatalf("same string got two IDs: %d and %d", a, c)
	}
	if a == NoStringID || b == NoStringID {
		t.Fatal("real strings must not get NoStringID")
	}
}

func TestInternEmptyIsNoStringID(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Fatalf("Intern(\"\") = %d, want NoStringID", id)
	}
}

func TestLookup(t *testing.T) {
	in := NewInterner()
	id := in.InternBytes([]byte("mut"))

	s, ok := in.Lookup(id)
	if !ok || s != "mut" {
		t.Fatalf("Lookup = %q, %v", s, ok)
	}
	if _, ok := in.Lookup(StringID(999)); ok {
		t.Fatal("unknown ID resolved")
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown ID")
		}
	}()
	NewInterner().MustLookup(StringID(42))
}
