package model

import "testing"

var allStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusRendering,
	TaskStatusWriting,
	TaskStatusStopping,
	TaskStatusStopped,
	TaskStatusCompleted,
	TaskStatusError,
}

func TestTaskStatus_ActiveOrFinished(t *testing.T) {
	for _, status := range allStatuses {
		if status.IsActive() == status.IsFinished() {
			t.Errorf("TaskStatus(%s): IsActive() = %v, IsFinished() = %v, expected exactly one", status, status.IsActive(), status.IsFinished())
		}
	}
	if !TaskStatusPending.IsActive() {
		t.Error("pending exports must count as active so duplicates are rejected")
	}
}

func TestTaskStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to TaskStatus
		expected bool
	}{
		{TaskStatusPending, TaskStatusRendering, true},
		{TaskStatusRendering, TaskStatusWriting, true},
		{TaskStatusWriting, TaskStatusWriting, true},
		{TaskStatusWriting, TaskStatusCompleted, true},
		{TaskStatusStopping, TaskStatusStopped, true},
		{TaskStatusStopping, TaskStatusCompleted, true},
		{TaskStatusStopping, TaskStatusWriting, false},
		{TaskStatusRendering, TaskStatusCompleted, false},
		{TaskStatusPending, TaskStatusWriting, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.expected {
			t.Errorf("TaskStatus(%s).CanTransition(%s) = %v, expected %v", tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestTaskStatus_FinishedIsFinal(t *testing.T) {
	for _, from := range allStatuses {
		if !from.IsFinished() {
			continue
		}
		for _, to := range allStatuses {
			if from.CanTransition(to) {
				t.Errorf("TaskStatus(%s).CanTransition(%s) = true, finished tasks must not change", from, to)
			}
		}
	}
}
