package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/mesh-designer/internal/document"
	"github.com/ytget/mesh-designer/internal/export"
)

func writeDocument(t *testing.T, dir string) string {
	t.Helper()
	path, err := document.Save(document.New(), filepath.Join(dir, "waves"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return path
}

func TestRun_RendersPNG(t *testing.T) {
	dir := t.TempDir()
	in := writeDocument(t, dir)
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	args := []string{"-in", in, "-out", out, "-width", "40", "-height", "30", "-palette", filepath.Join(dir, "palette.toml")}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v, stderr %q", err, stderr.String())
	}

	f, err := os.Open(filepath.Join(out, export.FileName(1)))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("image size = %dx%d, expected 40x30", cfg.Width, cfg.Height)
	}
	if !strings.Contains(stderr.String(), "wrote ") {
		t.Errorf("stderr = %q, expected a wrote line", stderr.String())
	}
}

func TestRun_Scale(t *testing.T) {
	dir := t.TempDir()
	in := writeDocument(t, dir)

	args := []string{"-in", in, "-out", dir, "-width", "20", "-height", "10", "-scale", "2", "-palette", filepath.Join(dir, "palette.toml")}
	if err := run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, export.FileName(2)))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("image size = %dx%d, expected 40x20", cfg.Width, cfg.Height)
	}
}

func TestRun_CodeOnly(t *testing.T) {
	dir := t.TempDir()
	in := writeDocument(t, dir)

	var stdout bytes.Buffer
	args := []string{"-in", in, "-code", "compose", "-color", "never", "-palette", filepath.Join(dir, "palette.toml")}
	if err := run(context.Background(), args, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "listOf(") {
		t.Errorf("stdout = %q, expected compose code", stdout.String())
	}
	if strings.Contains(stdout.String(), "\x1b[") {
		t.Error("stdout contains escape sequences with -color never")
	}
	if _, err := os.Stat(filepath.Join(dir, export.FileName(1))); !os.IsNotExist(err) {
		t.Errorf("png written without -out, stat error = %v", err)
	}
}

func TestRun_Colors(t *testing.T) {
	dir := t.TempDir()
	in := writeDocument(t, dir)

	var stdout bytes.Buffer
	args := []string{"-in", in, "-colors", "-color", "never", "-palette", filepath.Join(dir, "palette.toml")}
	if err := run(context.Background(), args, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	// three row colors plus the transparent background
	if len(lines) != 4 {
		t.Fatalf("got %d lines, expected 4:\n%s", len(lines), stdout.String())
	}
	if !strings.Contains(lines[3], "#00000000 transparent") {
		t.Errorf("last line = %q, expected transparent background", lines[3])
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writeDocument(t, dir)

	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{"-code", "go"}},
		{"unknown format", []string{"-in", in, "-code", "swift"}},
		{"unknown color mode", []string{"-in", in, "-color", "sometimes"}},
		{"missing file", []string{"-in", filepath.Join(dir, "nope.mesh"), "-palette", filepath.Join(dir, "palette.toml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(context.Background(), tt.args, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
				t.Errorf("run(%v) expected error", tt.args)
			}
		})
	}
}

func TestCodeFormatter(t *testing.T) {
	tests := []struct {
		mode     string
		expected string
	}{
		{ColorNever, ""},
		{ColorAlways, "terminal256"},
		{ColorAuto, ""},
	}

	for _, tt := range tests {
		if got := codeFormatter(&bytes.Buffer{}, tt.mode); got != tt.expected {
			t.Errorf("codeFormatter(%q) = %q, expected %q", tt.mode, got, tt.expected)
		}
	}
}

func TestWriteCode_Highlighted(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCode(&buf, "package main\n", export.FormatGo, ColorAlways); err != nil {
		t.Fatalf("writeCode() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("writeCode() = %q, expected ANSI escapes", buf.String())
	}
	if !strings.Contains(buf.String(), "package") {
		t.Errorf("writeCode() = %q, expected the source text", buf.String())
	}
}
