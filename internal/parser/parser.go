package parser

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/lexer"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
	"github.com/snirk-lang/protosnirk-sub001/internal/token"
)

// Максимальная глубина вложенности выражений/блоков; дальше — ошибка,
// а не переполнение стека.
const maxNestingDepth = 256

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	fs       *source.FileSet
	opts     Options
	registry *Registry
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	depth    uint
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		registry: defaultRegistry,
		lastSpan: lx.EmptySpan(),
	}

	fileID := p.parseItems()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: fileID,
		Bag:  bag,
	}
}

// parseItems — основной цикл верхнего уровня: пока не EOF — parseItem.
// Любая ошибка внутри item немедленно прерывает его разбор; затем
// resyncTop и попытка следующего item.
func (p *Parser) parseItems() ast.FileID {
	startSpan := p.lx.Peek().Span
	var items []ast.ItemID
	for !p.at(token.EOF) {
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			continue
		}
		items = append(items, itemID)
	}
	span := startSpan.Cover(p.lastSpan)
	return p.arenas.Files.New(startSpan.File, span, items)
}

// parseItem выбирает по первому токену нужный распознаватель
// top-level конструкции.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwFn:
		return p.parseFnItem()
	case token.KwTypedef:
		return p.parseTypedefItem()
	default:
		p.err(diag.SynUnexpectedTopLevel, "expected 'fn' or 'typedef', got \""+p.lx.Peek().Text+"\"")
		return ast.NoItemID, false
	}
}

// resyncTop — восстановление после ошибки: прокручиваем до стартового
// токена следующего item на нулевой глубине блоков, либо до EOF.
func (p *Parser) resyncTop() {
	blockDepth := 0
	for {
		switch p.lx.Peek().Kind {
		case token.EOF:
			return
		case token.Indent:
			blockDepth++
		case token.Dedent:
			if blockDepth > 0 {
				blockDepth--
			}
		case token.KwFn, token.KwTypedef:
			if blockDepth == 0 {
				return
			}
		}
		p.advance()
	}
}

// parseIdent — утилита: ожидает Ident и интернирует его.
// На ошибке — репорт SynExpectIdentifier.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		id := p.arenas.Strings.Intern(tok.Text)
		return id, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}

// enterNesting ограничивает глубину рекурсии разбора.
func (p *Parser) enterNesting() bool {
	if p.depth >= maxNestingDepth {
		p.err(diag.SynNestingTooDeep, "expression nests too deeply")
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leaveNesting() {
	p.depth--
}
