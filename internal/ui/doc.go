// Package ui contains the Fyne-based group creation screen. It keeps the draft
// edited by the user, forwards creation requests to the workflow service and
// renders the workflow's progress events on the UI goroutine.
package ui
