package model

import (
	"fmt"
	"time"
)

// CreationRun is a snapshot of one accepted creation request
type CreationRun struct {
	ID         string
	Name       string // trimmed group name
	Contacts   int    // number of valid phone tokens
	State      RunState
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// Summary returns the summary presented when the run completes
func (r CreationRun) Summary() GroupSummary {
	return GroupSummary{Name: r.Name, Contacts: r.Contacts}
}

// GetElapsedString returns run duration formatted as ss.mmm s, or "—" if not finished
func (r CreationRun) GetElapsedString() string {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return "—"
	}

	elapsed := r.FinishedAt.Sub(r.StartedAt)
	return fmt.Sprintf("%.3fs", elapsed.Seconds())
}
