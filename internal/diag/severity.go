package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevLint is for non-fatal style findings on otherwise valid code.
	SevLint Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevLint:
		return "LINT"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
