package export

import (
	"context"

	"github.com/ytget/mesh-designer/internal/model"
)

// Exporter defines the interface for the background image export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	StartExport(job Job) (*model.ExportTask, error)
	StopExport(taskID string) error
	GetTask(taskID string) (*model.ExportTask, bool)
	Wait(ctx context.Context, taskID string) (*model.ExportTask, error)
}

var _ Exporter = (*Service)(nil)
