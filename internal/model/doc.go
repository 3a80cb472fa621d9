// Package model defines domain data structures used across the app: the group
// draft edited on screen, the record appended to the group log, and the state
// enum of a creation run. Structures are designed for direct binding in the UI
// and explicit state transitions.
package model
