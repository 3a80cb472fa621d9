package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/group-creator/internal/journal"
	"github.com/ytget/group-creator/internal/model"
	"github.com/ytget/group-creator/internal/validation"
)

// Progress pacing defaults
const (
	DefaultSteps     = 100
	DefaultStepDelay = 20 * time.Millisecond

	RunIDPrefix = "run-"
)

var (
	// ErrBusy is returned when a run is already in flight
	ErrBusy = errors.New("a group creation is already in progress")

	// ErrAborted marks a run whose progress sequence was interrupted
	ErrAborted = errors.New("group creation aborted")
)

// Config controls the simulated progress sequence
type Config struct {
	Steps     int
	StepDelay time.Duration
}

// DefaultConfig returns 100 steps of 20ms
func DefaultConfig() Config {
	return Config{Steps: DefaultSteps, StepDelay: DefaultStepDelay}
}

// Service runs group creations one at a time
type Service struct {
	cfg     Config
	journal journal.Appender
	logger  *slog.Logger

	mu      sync.Mutex
	state   model.RunState
	busy    bool                 // set from Submit until the workflow is back to Idle
	onState func(model.RunState) // callback for UI updates
}

var _ Creator = (*Service)(nil)

// NewService creates a new workflow service
func NewService(cfg Config, j journal.Appender, logger *slog.Logger) *Service {
	if cfg.Steps <= 0 {
		cfg.Steps = DefaultSteps
	}
	if cfg.StepDelay < 0 {
		cfg.StepDelay = 0
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		cfg:     cfg,
		journal: j,
		logger:  logger,
		state:   model.RunStateIdle,
	}
}

// SetStateCallback sets the callback function for state transitions
func (s *Service) SetStateCallback(callback func(model.RunState)) {
	s.mu.Lock()
	s.onState = callback
	s.mu.Unlock()
}

// State returns the current workflow state
func (s *Service) State() model.RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// JournalPath returns the group log the service appends to, empty when it has none
func (s *Service) JournalPath() string {
	if s.journal == nil {
		return ""
	}
	return s.journal.Path()
}

// Submit validates the draft and, when it passes, starts the progress sequence
// in the background. ctx cancellation aborts the run.
func (s *Service) Submit(ctx context.Context, draft model.GroupDraft) (*Run, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.state = model.RunStateValidating
	callback := s.onState
	s.mu.Unlock()
	notify(callback, model.RunStateValidating)

	result := validation.Validate(draft)
	if !result.IsValid() {
		s.logger.Info("group draft rejected",
			slog.String("reason", result.Reason.String()),
			slog.String("group", draft.TrimmedName()),
		)
		s.setState(model.RunStateRejected)
		s.release()
		return nil, result.Err()
	}

	runCtx, cancel := context.WithCancel(ctx)
	run := newRun(generateRunID(), draft, s.cfg.Steps, cancel)
	record := model.NewGroupRecord(draft)

	s.logger.Info("group creation started",
		slog.String("run_id", run.ID()),
		slog.String("group", record.Name),
		slog.Int("contacts", run.state.Contacts),
	)
	s.logger.Debug("group phone numbers", slog.String("run_id", run.ID()), slog.String("phones", record.PhoneNumbersRaw))

	s.setState(model.RunStateRunning)
	go s.execute(runCtx, run, record)

	return run, nil
}

// execute performs the paced progress sequence and the completion side effects
func (s *Service) execute(ctx context.Context, run *Run, record model.GroupRecord) {
	defer run.close()

	for step := 1; step <= s.cfg.Steps; step++ {
		if err := sleepContext(ctx, s.cfg.StepDelay); err != nil {
			s.abort(run, step, err)
			return
		}

		progress := float64(step) / float64(s.cfg.Steps)
		run.setProgress(progress)
		run.emit(Event{Kind: EventProgress, Step: step, Progress: progress})
	}

	s.complete(run, record)
}

// complete presents the summary first, then appends the record
func (s *Service) complete(run *Run, record model.GroupRecord) {
	s.setState(model.RunStateCompleted)

	summary := run.Snapshot().Summary()
	run.emit(Event{Kind: EventSummary, Progress: 1.0, Summary: summary})

	var writeErr error
	if s.journal != nil {
		writeErr = s.journal.Append(record)
	}
	if writeErr != nil {
		s.logger.Error("failed to record group",
			slog.String("operation", "Append"),
			slog.String("run_id", run.ID()),
			slog.String("path", s.journal.Path()),
			slog.Any("error", writeErr),
		)
		run.emit(Event{Kind: EventLogWriteFailed, Progress: 1.0, Err: writeErr})
	} else if s.journal != nil {
		s.logger.Info("group recorded",
			slog.String("run_id", run.ID()),
			slog.String("path", s.journal.Path()),
		)
	}

	run.finish(model.RunStateCompleted, writeErr, nil)
	run.emit(Event{Kind: EventCompleted, Progress: 1.0, Summary: summary, Err: writeErr})

	snapshot := run.Snapshot()
	s.logger.Info("group creation completed",
		slog.String("run_id", snapshot.ID),
		slog.String("elapsed", snapshot.GetElapsedString()),
	)

	s.release()
}

// abort ends the run without a summary or a log record
func (s *Service) abort(run *Run, step int, cause error) {
	err := fmt.Errorf("%w at step %d: %w", ErrAborted, step, cause)

	s.logger.Warn("group creation aborted",
		slog.String("run_id", run.ID()),
		slog.Int("step", step),
		slog.Any("error", cause),
	)

	s.setState(model.RunStateAborted)
	run.finish(model.RunStateAborted, err, err)
	run.emit(Event{Kind: EventAborted, Step: step, Progress: run.Snapshot().Progress, Err: err})
	s.release()
}

func (s *Service) setState(state model.RunState) {
	s.mu.Lock()
	s.state = state
	callback := s.onState
	s.mu.Unlock()

	notify(callback, state)
}

// release returns the workflow to Idle and accepts the next submission
func (s *Service) release() {
	s.mu.Lock()
	s.state = model.RunStateIdle
	s.busy = false
	callback := s.onState
	s.mu.Unlock()

	notify(callback, model.RunStateIdle)
}

func notify(callback func(model.RunState), state model.RunState) {
	if callback != nil {
		callback(state)
	}
}

// sleepContext waits for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// generateRunID generates a unique run ID using UUID v7 so IDs sort by creation time
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
