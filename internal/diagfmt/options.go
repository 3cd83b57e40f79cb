package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps paths the way the FileSet recorded them.
	PathModeAuto PathMode = iota
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// ShowSource prints the offending line with a caret underline.
	ShowSource bool
}

// DefaultPrettyOpts — всё включено, цвет решает вызывающий.
func DefaultPrettyOpts(colored bool) PrettyOpts {
	return PrettyOpts{
		Color:      colored,
		ShowNotes:  true,
		ShowSource: true,
	}
}
