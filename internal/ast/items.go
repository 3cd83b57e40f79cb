package ast

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// Items manages allocation of top-level items.
type Items struct {
	Arena    *Arena[Item]
	Fns      *Arena[ItemFnData]
	Typedefs *Arena[ItemTypedefData]
	Params   *Arena[FnParam]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Items{
		Arena:    NewArena[Item](capHint),
		Fns:      NewArena[ItemFnData](capHint),
		Typedefs: NewArena[ItemTypedefData](capHint),
		Params:   NewArena[FnParam](capHint),
	}
}

func (it *Items) new(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return ItemID(it.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the item with the given ID.
func (it *Items) Get(id ItemID) *Item {
	return it.Arena.Get(uint32(id))
}

// NewParam allocates a function parameter.
func (it *Items) NewParam(name source.StringID, nameSpan source.Span, typ TypeID) FnParamID {
	return FnParamID(it.Params.Allocate(FnParam{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typ,
	}))
}

// Param returns the parameter with the given ID.
func (it *Items) Param(id FnParamID) *FnParam {
	return it.Params.Get(uint32(id))
}

// NewFn creates a new function item.
func (it *Items) NewFn(span source.Span, name source.StringID, nameSpan source.Span, params []FnParamID, ret TypeID, body StmtID) ItemID {
	payload := it.Fns.Allocate(ItemFnData{
		Name:       name,
		NameSpan:   nameSpan,
		Params:     params,
		ReturnType: ret,
		Body:       body,
	})
	return it.new(ItemFn, span, PayloadID(payload))
}

// Fn returns the function data for the given item ID.
func (it *Items) Fn(id ItemID) (*ItemFnData, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return it.Fns.Get(uint32(item.Payload)), true
}

// NewTypedef creates a new typedef item.
func (it *Items) NewTypedef(span source.Span, name source.StringID, nameSpan source.Span, typ TypeID) ItemID {
	payload := it.Typedefs.Allocate(ItemTypedefData{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typ,
	})
	return it.new(ItemTypedef, span, PayloadID(payload))
}

// Typedef returns the typedef data for the given item ID.
func (it *Items) Typedef(id ItemID) (*ItemTypedefData, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemTypedef {
		return nil, false
	}
	return it.Typedefs.Get(uint32(item.Payload)), true
}
