package driver

// Stage — фаза обработки файла в батч-прогоне.
type Stage uint8

const (
	StageQueued Stage = iota
	StageParse
	StageResolve
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageParse:
		return "parse"
	case StageResolve:
		return "resolve"
	case StageDone:
		return "done"
	default:
		return "?"
	}
}

// Event — прогресс одного файла; поток событий потребляет UI.
type Event struct {
	Path     string
	Stage    Stage
	Errors   int
	Warnings int
	Lints    int
	Cached   bool
}
