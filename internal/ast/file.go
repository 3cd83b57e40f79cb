package ast

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// File is the root of one parsed source file.
type File struct {
	Source source.FileID
	Span   source.Span
	Items  []ItemID
}

// Files manages allocation of parsed files.
type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	if capHint == 0 {
		capHint = 1 << 2
	}
	return &Files{Arena: NewArena[File](capHint)}
}

// New creates a new file node.
func (f *Files) New(src source.FileID, span source.Span, items []ItemID) FileID {
	return FileID(f.Arena.Allocate(File{Source: src, Span: span, Items: items}))
}

// Get returns the file with the given ID.
func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
