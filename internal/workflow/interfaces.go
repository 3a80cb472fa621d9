package workflow

import (
	"context"

	"github.com/ytget/group-creator/internal/model"
)

// Creator defines the interface for the group creation workflow.
type Creator interface {
	// SetStateCallback registers the observer notified on every state transition
	SetStateCallback(func(model.RunState))

	// Submit validates the draft and starts a run. A rejected draft returns a
	// *validation.ValidationError and no run; an overlapping submission returns ErrBusy.
	Submit(ctx context.Context, draft model.GroupDraft) (*Run, error)

	// State returns the current workflow state
	State() model.RunState

	// JournalPath returns the file completed groups are appended to
	JournalPath() string
}
