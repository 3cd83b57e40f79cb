package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	//            offset: 0123 456789
	id := fs.AddVirtual("a.snk", []byte("let\na = 1\n"))

	cases := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start of file", 0, LineCol{Line: 1, Col: 1}},
		{"end of first word", 2, LineCol{Line: 1, Col: 3}},
		{"newline stays on its line", 3, LineCol{Line: 1, Col: 4}},
		{"start of second line", 4, LineCol{Line: 2, Col: 1}},
		{"middle of second line", 8, LineCol{Line: 2, Col: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
			if start != tc.want {
				t.Errorf("off %d resolved to %+v, want %+v", tc.off, start, tc.want)
			}
		})
	}
}

func TestResolveSingleLineFile(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("one.snk", []byte("abc"))
	start, _ := fs.Resolve(Span{File: id, Start: 2, End: 2})
	if (start != LineCol{Line: 1, Col: 3}) {
		t.Fatalf("resolved to %+v, want 1:3", start)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.snk", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q, want %q", got, "second")
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("GetLine(3) = %q, want %q", got, "third")
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine(9) = %q, want empty", got)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.snk")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)

	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q, want %q", f.Content, "a\nb\n")
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF flag not set")
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("x.snk", []byte("a"))
	if _, ok := fs.GetByPath("x.snk"); !ok {
		t.Fatal("x.snk not found by path")
	}
	if _, ok := fs.GetByPath("missing.snk"); ok {
		t.Fatal("missing.snk unexpectedly found")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 6, End: 12}
	got := a.Cover(b)
	if got.Start != 4 || got.End != 12 {
		t.Fatalf("Cover = %v, want 4..12", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if a.Cover(other) != a {
		t.Fatal("span from another file must be ignored")
	}
}
