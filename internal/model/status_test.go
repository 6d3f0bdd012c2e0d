package model

import "testing"

func TestTaskStatusIsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusDecoding, true},
		{TaskStatusEncoding, true},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsActive(); got != tt.expected {
				t.Errorf("IsActive() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTaskStatusIsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusDecoding, false},
		{TaskStatusEncoding, false},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsFinished(); got != tt.expected {
				t.Errorf("IsFinished() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
