package workflow

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/ytget/group-creator/internal/model"
)

// Run is the handle of one accepted creation request
type Run struct {
	mu     sync.RWMutex
	state  model.CreationRun
	err    error
	events chan Event
	done   chan struct{}
	cancel context.CancelFunc
}

func newRun(id string, draft model.GroupDraft, steps int, cancel context.CancelFunc) *Run {
	return &Run{
		state: model.CreationRun{
			ID:        id,
			Name:      draft.TrimmedName(),
			Contacts:  len(draft.PhoneNumbers()),
			State:     model.RunStateRunning,
			StartedAt: time.Now(),
		},
		// Sized so the background goroutine never blocks on a slow reader:
		// every progress step plus summary, log failure and the terminal event.
		events: make(chan Event, steps+3),
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// ID returns the run identifier
func (r *Run) ID() string {
	return r.state.ID
}

// Events returns the ordered event stream. It is closed after the terminal event.
func (r *Run) Events() <-chan Event {
	return r.events
}

// Done is closed when the run reaches a terminal state
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Cancel interrupts the progress sequence; the run ends Aborted
func (r *Run) Cancel() {
	r.cancel()
}

// Snapshot returns a copy of the run state
func (r *Run) Snapshot() model.CreationRun {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Wait blocks until the run ends and returns its final snapshot.
// The error wraps ErrAborted when the run was interrupted.
func (r *Run) Wait() (model.CreationRun, error) {
	<-r.done
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state, r.err
}

func (r *Run) setProgress(progress float64) {
	r.mu.Lock()
	r.state.Progress = progress
	r.state.Percent = int(math.Round(progress * 100))
	r.mu.Unlock()
}

func (r *Run) finish(state model.RunState, lastErr, runErr error) {
	r.mu.Lock()
	r.state.State = state
	r.state.FinishedAt = time.Now()
	if lastErr != nil {
		r.state.LastError = lastErr.Error()
	}
	r.err = runErr
	r.mu.Unlock()
}

func (r *Run) emit(ev Event) {
	ev.RunID = r.state.ID
	r.events <- ev
}

// close releases readers of Events and Wait
func (r *Run) close() {
	close(r.events)
	close(r.done)
	r.cancel()
}
