package model

// RunState represents the state of the group creation workflow
type RunState string

const (
	// RunStateIdle means the workflow waits for a creation request
	RunStateIdle RunState = "Idle"

	// RunStateValidating means the draft is being checked
	RunStateValidating RunState = "Validating"

	// RunStateRejected means the draft failed validation
	RunStateRejected RunState = "Rejected"

	// RunStateRunning means the progress sequence is in flight
	RunStateRunning RunState = "Running"

	// RunStateCompleted means the progress reached 1.0 and the group was recorded
	RunStateCompleted RunState = "Completed"

	// RunStateAborted means the progress sequence was interrupted
	RunStateAborted RunState = "Aborted"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsActive returns true while a submission is being processed
func (rs RunState) IsActive() bool {
	return rs == RunStateValidating || rs == RunStateRunning
}

// IsFinished returns true if the state ends a submission (rejected, completed, or aborted)
func (rs RunState) IsFinished() bool {
	return rs == RunStateRejected || rs == RunStateCompleted || rs == RunStateAborted
}
