// Package workflow drives one group creation: it validates the draft, runs the
// paced progress sequence on a background goroutine, and records the group in
// the journal once the sequence completes. Progress reaches the presentation
// layer as ordered events on a per-run channel; state transitions are reported
// through a callback.
package workflow
