package model

import "testing"

func TestRunState_IsActive(t *testing.T) {
	tests := []struct {
		state    RunState
		expected bool
	}{
		{RunStateIdle, false},
		{RunStateValidating, true},
		{RunStateRejected, false},
		{RunStateRunning, true},
		{RunStateCompleted, false},
		{RunStateAborted, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("RunState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestRunState_IsFinished(t *testing.T) {
	tests := []struct {
		state    RunState
		expected bool
	}{
		{RunStateIdle, false},
		{RunStateValidating, false},
		{RunStateRejected, true},
		{RunStateRunning, false},
		{RunStateCompleted, true},
		{RunStateAborted, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("RunState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestRunState_String(t *testing.T) {
	state := RunStateRunning
	expected := "Running"
	result := state.String()

	if result != expected {
		t.Errorf("RunState.String() = %s, expected %s", result, expected)
	}
}
