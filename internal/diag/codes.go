package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo          Code = 1000
	LexUnknownChar   Code = 1001
	LexBadNumber     Code = 1002
	LexBadDedent     Code = 1003
	LexUnclosedParen Code = 1004

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedDeindent Code = 2002
	SynExpectExpression   Code = 2003
	SynExpectLValue       Code = 2004
	SynExpectIdentifier   Code = 2005
	SynExpectType         Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnexpectedTopLevel Code = 2008
	SynNestingTooDeep     Code = 2009
	SynInlineElseIf       Code = 2010

	// Резолюция имён
	SemaInfo                 Code = 3000
	SemaDuplicateDeclaration Code = 3001
	SemaUndeclaredName       Code = 3002
	SemaAssignImmutable      Code = 3003
	SemaScopeMismatch        Code = 3004

	// Линты (только после безошибочного прохода)
	LintUnusedVariable Code = 4001
	LintUnusedMutable  Code = 4002
)

func (c Code) String() string {
	switch c {
	case LexUnknownChar:
		return "unknown-char"
	case LexBadNumber:
		return "bad-number"
	case LexBadDedent:
		return "bad-dedent"
	case LexUnclosedParen:
		return "unclosed-paren"
	case SynUnexpectedToken:
		return "unexpected-token"
	case SynUnexpectedDeindent:
		return "unexpected-deindent"
	case SynExpectExpression:
		return "expected-expression"
	case SynExpectLValue:
		return "expected-lvalue"
	case SynExpectIdentifier:
		return "expected-identifier"
	case SynExpectType:
		return "expected-type"
	case SynUnclosedParen:
		return "expected-close-paren"
	case SynUnexpectedTopLevel:
		return "unexpected-top-level"
	case SynNestingTooDeep:
		return "nesting-too-deep"
	case SynInlineElseIf:
		return "inline-else-if"
	case SemaDuplicateDeclaration:
		return "duplicate-declaration"
	case SemaUndeclaredName:
		return "undeclared-name"
	case SemaAssignImmutable:
		return "assign-to-immutable"
	case SemaScopeMismatch:
		return "scope-mismatch"
	case LintUnusedVariable:
		return "unused-variable"
	case LintUnusedMutable:
		return "unused-mutable"
	default:
		return fmt.Sprintf("code-%04d", uint16(c))
	}
}
