package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/mesh-designer/internal/interp"
	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/platform"
)

// Export service constants
const (
	TaskIDPrefix     = "export-"
	ProgressRendered = 0.6
	ProgressEncoded  = 0.9
)

// ErrTaskNotFound is returned for unknown task ids
var ErrTaskNotFound = errors.New("export task not found")

// Job is one image export request. Field must not be modified after the
// job is started.
type Job struct {
	Name    string
	Field   *interp.Field
	Options ImageOptions
	Dir     string
}

// OutputPath returns the file the job writes
func (j Job) OutputPath() string {
	return filepath.Join(j.Dir, FileName(j.Options.Normalized().Scale))
}

// Service runs image exports in the background
type Service struct {
	tasks      map[string]*model.ExportTask
	cancels    map[string]context.CancelFunc
	done       map[string]chan struct{}
	tasksMutex sync.RWMutex
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		tasks:   make(map[string]*model.ExportTask),
		cancels: make(map[string]context.CancelFunc),
		done:    make(map[string]chan struct{}),
	}
}

// SetUpdateCallback sets the callback function for task updates.
// The callback receives a copy of the task.
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// StartExport validates the job and starts rendering it in the background
func (s *Service) StartExport(job Job) (*model.ExportTask, error) {
	if job.Field == nil {
		return nil, fmt.Errorf("export job has no field")
	}
	if job.Dir == "" {
		return nil, fmt.Errorf("export job has no output directory")
	}
	job.Options = job.Options.Normalized()
	outputPath := job.OutputPath()

	s.tasksMutex.Lock()
	for _, task := range s.tasks {
		if task.OutputPath == outputPath && task.Status.IsActive() {
			s.tasksMutex.Unlock()
			return nil, fmt.Errorf("export already in progress for file: %s", outputPath)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	task := &model.ExportTask{
		ID:         generateTaskID(),
		Name:       job.Name,
		Scale:      job.Options.Scale,
		OutputPath: outputPath,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}
	s.tasks[task.ID] = task
	s.cancels[task.ID] = cancel
	s.done[task.ID] = make(chan struct{})
	snapshot := *task
	s.tasksMutex.Unlock()

	platform.Logger().Info("export started", "task", task.ID, "path", outputPath, "scale", task.Scale)
	go s.runExport(ctx, task.ID, job)

	return &snapshot, nil
}

// StopExport requests cancellation of a running export
func (s *Service) StopExport(taskID string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[taskID]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if !task.Status.IsActive() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("export task is not active: %s", task.Status)
	}
	task.Status = model.TaskStatusStopping
	cancel := s.cancels[taskID]
	s.tasksMutex.Unlock()

	cancel()
	s.notifyUpdate(taskID)
	return nil
}

// GetTask returns a copy of an export task by ID
func (s *Service) GetTask(taskID string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// Wait blocks until the task finishes or ctx is done
func (s *Service) Wait(ctx context.Context, taskID string) (*model.ExportTask, error) {
	s.tasksMutex.RLock()
	done, exists := s.done[taskID]
	s.tasksMutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}

	select {
	case <-done:
		task, _ := s.GetTask(taskID)
		return task, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// runExport performs the actual rendering and writing
func (s *Service) runExport(ctx context.Context, taskID string, job Job) {
	defer s.finish(taskID)

	s.setStatus(taskID, model.TaskStatusRendering, 0)
	img, err := RenderImage(job.Field, job.Options)
	if err != nil {
		s.setTaskError(taskID, err)
		return
	}
	if ctx.Err() != nil {
		s.setStopped(taskID)
		return
	}

	s.setStatus(taskID, model.TaskStatusWriting, ProgressRendered)
	var buf bytes.Buffer
	if err := encodePNG(&buf, img); err != nil {
		s.setTaskError(taskID, err)
		return
	}
	if ctx.Err() != nil {
		s.setStopped(taskID)
		return
	}

	s.setStatus(taskID, model.TaskStatusWriting, ProgressEncoded)
	if err := platform.WriteFileAtomic(job.OutputPath(), buf.Bytes()); err != nil {
		s.setTaskError(taskID, err)
		return
	}

	s.tasksMutex.Lock()
	task := s.tasks[taskID]
	if !task.Status.CanTransition(model.TaskStatusCompleted) {
		s.tasksMutex.Unlock()
		return
	}
	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	task.FileSize = int64(buf.Len())
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	platform.Logger().Info("export completed", "task", taskID, "path", job.OutputPath(), "bytes", buf.Len())
	s.notifyUpdate(taskID)
}

func (s *Service) setStatus(taskID string, status model.TaskStatus, progress float64) {
	s.tasksMutex.Lock()
	task := s.tasks[taskID]
	if task.Status.CanTransition(status) {
		task.Status = status
	}
	task.Progress = progress
	task.Percent = int(progress * 100)
	s.tasksMutex.Unlock()

	s.notifyUpdate(taskID)
}

func (s *Service) setStopped(taskID string) {
	s.tasksMutex.Lock()
	task := s.tasks[taskID]
	task.Status = model.TaskStatusStopped
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	platform.Logger().Info("export stopped", "task", taskID)
	s.notifyUpdate(taskID)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(taskID string, err error) {
	s.tasksMutex.Lock()
	task := s.tasks[taskID]
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	platform.Logger().Error("export failed", "task", taskID, "error", err)
	s.notifyUpdate(taskID)
}

func (s *Service) finish(taskID string) {
	s.tasksMutex.Lock()
	if cancel, ok := s.cancels[taskID]; ok {
		cancel()
		delete(s.cancels, taskID)
	}
	done := s.done[taskID]
	s.tasksMutex.Unlock()
	close(done)
}

// notifyUpdate calls the update callback, if set, with a copy of the task
func (s *Service) notifyUpdate(taskID string) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	task, exists := s.tasks[taskID]
	var snapshot model.ExportTask
	if exists {
		snapshot = *task
	}
	s.tasksMutex.RUnlock()

	if callback != nil && exists {
		callback(&snapshot)
	}
}

// generateTaskID generates a unique, time-ordered task ID using UUID v7
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
