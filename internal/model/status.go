package model

import "slices"

// TaskStatus represents the status of a background export task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRendering means the field is being rasterized
	TaskStatusRendering TaskStatus = "Rendering"

	// TaskStatusWriting means the encoded output is being written
	TaskStatusWriting TaskStatus = "Writing"

	// TaskStatusStopping means cancellation was requested
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the task was cancelled before completion
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusRendering || ts == TaskStatusWriting || ts == TaskStatusStopping
}

// IsFinished reports whether the task reached a final state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}

// exportTransitions lists the states each active state may move to.
// Writing may repeat to report progress. A stop requested after the file
// was written still completes.
var exportTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusPending:   {TaskStatusRendering, TaskStatusStopping, TaskStatusStopped, TaskStatusError},
	TaskStatusRendering: {TaskStatusWriting, TaskStatusStopping, TaskStatusStopped, TaskStatusError},
	TaskStatusWriting:   {TaskStatusWriting, TaskStatusStopping, TaskStatusStopped, TaskStatusCompleted, TaskStatusError},
	TaskStatusStopping:  {TaskStatusStopped, TaskStatusCompleted, TaskStatusError},
}

// CanTransition reports whether an export task in ts may move to next.
// Finished states never change.
func (ts TaskStatus) CanTransition(next TaskStatus) bool {
	return slices.Contains(exportTransitions[ts], next)
}
