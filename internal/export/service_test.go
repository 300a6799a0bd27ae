package export

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/mesh-designer/internal/model"
)

func TestNewService(t *testing.T) {
	service := NewService()

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
}

func TestGenerateTaskID(t *testing.T) {
	a, b := generateTaskID(), generateTaskID()

	assert.True(t, len(a) > len(TaskIDPrefix))
	assert.Equal(t, TaskIDPrefix, a[:len(TaskIDPrefix)])
	assert.NotEqual(t, a, b)
}

func TestStartExport_Validation(t *testing.T) {
	service := NewService()

	_, err := service.StartExport(Job{Dir: t.TempDir()})
	assert.Error(t, err)

	_, err = service.StartExport(Job{Field: testField(t)})
	assert.Error(t, err)
}

func TestStartExport_WritesFile(t *testing.T) {
	service := NewService()
	dir := t.TempDir()

	var mu sync.Mutex
	var statuses []model.TaskStatus
	service.SetUpdateCallback(func(task *model.ExportTask) {
		mu.Lock()
		statuses = append(statuses, task.Status)
		mu.Unlock()
	})

	task, err := service.StartExport(Job{
		Name:    "test",
		Field:   testField(t),
		Options: ImageOptions{Width: 32, Height: 16, Scale: 2},
		Dir:     dir,
	})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, task.Status)
	assert.Equal(t, filepath.Join(dir, "mesh-export@2x.png"), task.OutputPath)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done, err := service.Wait(ctx, task.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TaskStatusCompleted, done.Status)
	assert.Equal(t, 100, done.Percent)

	info, err := os.Stat(done.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), done.FileSize)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, statuses)
	assert.Equal(t, model.TaskStatusCompleted, statuses[len(statuses)-1])
}

func TestStopExport_Unknown(t *testing.T) {
	service := NewService()

	assert.ErrorIs(t, service.StopExport("missing"), ErrTaskNotFound)

	_, err := service.Wait(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, ok := service.GetTask("missing")
	assert.False(t, ok)
}

func TestStopExport_Finished(t *testing.T) {
	service := NewService()
	task, err := service.StartExport(Job{Field: testField(t), Options: ImageOptions{Width: 4, Height: 4}, Dir: t.TempDir()})
	require.NoError(t, err)

	_, err = service.Wait(context.Background(), task.ID)
	require.NoError(t, err)

	assert.Error(t, service.StopExport(task.ID))
}
