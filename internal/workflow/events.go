package workflow

import (
	"github.com/ytget/group-creator/internal/model"
)

// EventKind identifies what a run event carries
type EventKind int

const (
	// EventProgress carries a new progress value
	EventProgress EventKind = iota

	// EventSummary carries the summary to present once progress reaches 1.0
	EventSummary

	// EventLogWriteFailed reports that the group could not be appended to the log
	EventLogWriteFailed

	// EventCompleted is the last event of a successful run
	EventCompleted

	// EventAborted is the last event of an interrupted run
	EventAborted
)

// String returns the event kind name
func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "Progress"
	case EventSummary:
		return "Summary"
	case EventLogWriteFailed:
		return "LogWriteFailed"
	case EventCompleted:
		return "Completed"
	case EventAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true for the event that closes a run
func (k EventKind) IsTerminal() bool {
	return k == EventCompleted || k == EventAborted
}

// Event is one notification emitted by a running creation
type Event struct {
	Kind     EventKind
	RunID    string
	Step     int     // 1-based step index for progress events
	Progress float64 // 0.0 to 1.0
	Summary  model.GroupSummary
	Err      error
}
