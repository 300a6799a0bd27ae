package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ExportTask represents a single background image export
type ExportTask struct {
	ID         string
	Name       string
	Scale      int
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string
	OutputPath string
	FileSize   int64
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDurationString returns the elapsed export time as mm:ss.mmm, or "—" if not finished
func (et *ExportTask) GetDurationString() string {
	if et.FinishedAt.IsZero() || et.StartedAt.IsZero() {
		return "—"
	}

	d := et.FinishedAt.Sub(et.StartedAt)
	if d < 0 {
		return "—"
	}

	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	millis := int((d % time.Second) / time.Millisecond)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis))
	return b.String()
}

// GetDisplayTitle returns the output filename, the task name, or the ID in order of preference
func (et *ExportTask) GetDisplayTitle() string {
	if et.OutputPath != "" {
		return filepath.Base(et.OutputPath)
	}
	if et.Name != "" {
		return et.Name
	}
	return et.ID
}
