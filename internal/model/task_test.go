package model

import (
	"testing"
	"time"
)

func TestExportTask_GetDurationString(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		finished time.Time
		expected string
	}{
		{time.Time{}, "—"},
		{start.Add(-time.Second), "—"},
		{start.Add(250 * time.Millisecond), "00:00.250"},
		{start.Add(61*time.Second + 5*time.Millisecond), "01:01.005"},
	}

	for _, test := range tests {
		task := &ExportTask{StartedAt: start, FinishedAt: test.finished}
		result := task.GetDurationString()
		if result != test.expected {
			t.Errorf("GetDurationString() with FinishedAt=%v = %s, expected %s", test.finished, result, test.expected)
		}
	}
}

func TestExportTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		id       string
		name     string
		output   string
		expected string
	}{
		{"export-1", "Sunset", "/tmp/out/mesh-export@2x.png", "mesh-export@2x.png"},
		{"export-2", "Sunset", "", "Sunset"},
		{"export-3", "", "", "export-3"},
	}

	for _, test := range tests {
		task := &ExportTask{ID: test.id, Name: test.name, OutputPath: test.output}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with name='%s', output='%s' = '%s', expected '%s'",
				test.name, test.output, result, test.expected)
		}
	}
}
