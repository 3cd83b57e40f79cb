package driver

import (
	"fortio.org/safecast"

	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/lexer"
	"github.com/snirk-lang/protosnirk-sub001/internal/parser"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}

// parseVirtual — общий путь для Check: файл уже загружен в fs.
func parseVirtual(fs *source.FileSet, file *source.File, bag *diag.Bag, maxErrors uint) (*ast.Builder, ast.FileID) {
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})
	return builder, result.File
}
