package driver

import (
	"fortio.org/safecast"

	"github.com/snirk-lang/protosnirk-sub001/internal/ast"
	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/project"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
	"github.com/snirk-lang/protosnirk-sub001/internal/symbols"
)

type CheckResult struct {
	FileSet    *source.FileSet
	File       *source.File
	Builder    *ast.Builder
	FileID     ast.FileID
	Resolution *symbols.Resolution
	Bag        *diag.Bag
}

// Clean reports whether the file carries no errors at all.
func (r *CheckResult) Clean() bool {
	return !r.Bag.HasErrors()
}

// Check — parse + resolve одного файла. Файл с ошибками парсинга не
// резолвится: его дерево неполно, и каскадные диагнозы только шумят.
func Check(filePath string, manifest project.Manifest) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return checkLoaded(fs, fs.Get(fileID), manifest)
}

func checkLoaded(fs *source.FileSet, file *source.File, manifest project.Manifest) (*CheckResult, error) {
	maxErrors, err := safecast.Conv[uint](manifest.Check.MaxDiagnostics)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(manifest.Check.MaxDiagnostics)
	builder, astFile := parseVirtual(fs, file, bag, maxErrors)

	res := &CheckResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  astFile,
		Bag:     bag,
	}
	if bag.HasErrors() {
		return res, nil
	}

	res.Resolution = symbols.ResolveFile(builder, astFile, symbols.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	applyLintToggles(bag, manifest.Lints)
	bag.Sort()
	return res, nil
}

// applyLintToggles выбрасывает из bag линты, выключенные манифестом.
func applyLintToggles(bag *diag.Bag, lints project.LintsSection) {
	if lints.UnusedVariable && lints.UnusedMutable {
		return
	}
	bag.Filter(func(d diag.Diagnostic) bool {
		switch d.Code {
		case diag.LintUnusedVariable:
			return lints.UnusedVariable
		case diag.LintUnusedMutable:
			return lints.UnusedMutable
		default:
			return true
		}
	})
}
