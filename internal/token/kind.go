package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTypedef represents the 'typedef' keyword.
	KwTypedef // typedef
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Colon represents the colon token.
	Colon // :
	// Comma represents the comma token.
	Comma // ,
	// Arrow represents the return-type arrow token.
	Arrow // ->
	// FatArrow represents the inline-if arrow token.
	FatArrow // =>

	// Indent is the synthetic block-begin marker emitted by the lexer.
	Indent
	// Dedent is the synthetic block-end marker emitted by the lexer.
	Dedent

	kindCount
)

var kindNames = [...]string{
	Invalid:       "invalid",
	EOF:           "eof",
	Ident:         "ident",
	KwLet:         "let",
	KwMut:         "mut",
	KwFn:          "fn",
	KwDo:          "do",
	KwIf:          "if",
	KwElse:        "else",
	KwReturn:      "return",
	KwTypedef:     "typedef",
	KwTrue:        "true",
	KwFalse:       "false",
	IntLit:        "int literal",
	FloatLit:      "float literal",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	EqEq:          "==",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	LParen:        "(",
	RParen:        ")",
	Colon:         ":",
	Comma:         ",",
	Arrow:         "->",
	FatArrow:      "=>",
	Indent:        "indent",
	Dedent:        "dedent",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}
