package ast

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// Type is a written type annotation. Only named types exist in the
// surface syntax for now.
type Type struct {
	Span source.Span
	Name source.StringID
}

// Types manages allocation of type annotations.
type Types struct {
	Arena *Arena[Type]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Types{Arena: NewArena[Type](capHint)}
}

// NewNamed creates a new named type annotation.
func (t *Types) NewNamed(span source.Span, name source.StringID) TypeID {
	return TypeID(t.Arena.Allocate(Type{Span: span, Name: name}))
}

// Get returns the type annotation with the given ID.
func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}
