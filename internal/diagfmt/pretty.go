package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <code>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		formatLocation(fs, d.Primary, opts),
		severityLabel(d.Severity, opts.Color),
		d.Code.String(),
		d.Message,
	)
	if opts.ShowSource {
		printSourceLine(w, fs, d.Primary, opts)
	}
	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  note: %s: %s\n", formatLocation(fs, note.Span, opts), note.Msg)
			if opts.ShowSource {
				printSourceLine(w, fs, note.Span, opts)
			}
		}
	}
}

func formatLocation(fs *source.FileSet, sp source.Span, opts PrettyOpts) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	path := file.Path
	if opts.PathMode == PathModeBasename {
		path = filepath.Base(path)
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// printSourceLine печатает строку-контекст и подчёркивание ^~~~ по Span.
// Ширина учитывает wide runes через runewidth.
func printSourceLine(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	// Col — байтовая колонка, поэтому строку режем по байтам; границы
	// спанов лежат на границах рун.
	startByte := int(start.Col) - 1
	if startByte > len(line) {
		startByte = len(line)
	}
	pad := runewidth.StringWidth(line[:startByte])

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		endByte := int(end.Col) - 1
		if endByte > len(line) {
			endByte = len(line)
		}
		width = runewidth.StringWidth(line[startByte:endByte])
		if width < 1 {
			width = 1
		}
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	case diag.SevLint:
		return color.New(color.FgCyan).Sprint(label)
	default:
		return label
	}
}
