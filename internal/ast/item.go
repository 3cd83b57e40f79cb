package ast

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

type ItemKind uint8

const (
	ItemInvalid ItemKind = iota
	ItemFn
	ItemTypedef
)

// Item is the fixed-size head of every top-level item node.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// FnParam is one declared parameter of a function item.
type FnParam struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID // NoTypeID when omitted
}

type ItemFnData struct {
	Name       source.StringID
	NameSpan   source.Span
	Params     []FnParamID
	ReturnType TypeID // NoTypeID when omitted
	Body       StmtID // always a StmtBlock
}

type ItemTypedefData struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
}
