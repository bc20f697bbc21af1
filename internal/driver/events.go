package driver

// Stage is the step a file is in while a directory is tokenized.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLoad
	StageCache
	StageLex
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "loading"
	case StageCache:
		return "cache"
	case StageLex:
		return "lexing"
	default:
		return "queued"
	}
}

// Status is the state of a file within its stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports progress for one file. File is empty for events about the
// whole run.
type Event struct {
	File   string
	Stage  Stage
	Status Status
	// Errors is the number of lexical errors, set with StatusDone/StatusError.
	Errors int
	// Cached marks a finished file whose tokens came from the TokenCache.
	Cached bool
}

func emit(ch chan<- Event, ev Event) {
	if ch != nil {
		ch <- ev
	}
}
