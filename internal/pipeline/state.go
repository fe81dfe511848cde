package pipeline

// State is a step of the extraction run.
type State int

const (
	// StateStart is the initial state before the changelog is read.
	StateStart State = iota
	// StateLoaded means the changelog was read.
	StateLoaded
	// StateMatched means an entry was found.
	StateMatched
	// StateValidated means the entry's version matched an expected version.
	StateValidated
	// StateWritten means the entry was written to the output file.
	StateWritten
	// StateDone means the run completed successfully.
	StateDone
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateLoaded:
		return "loaded"
	case StateMatched:
		return "matched"
	case StateValidated:
		return "validated"
	case StateWritten:
		return "written"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
