package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/gogpu/gg"

	"github.com/ytget/mesh-designer/internal/config"
	"github.com/ytget/mesh-designer/internal/export"
	"github.com/ytget/mesh-designer/internal/history"
	"github.com/ytget/mesh-designer/internal/palette"
	"github.com/ytget/mesh-designer/internal/platform"
	"github.com/ytget/mesh-designer/internal/session"
	"github.com/ytget/mesh-designer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.mesh-designer"
	AppName = "Mesh Designer"

	WindowWidth  = 1100
	WindowHeight = 720

	// EnvLogLevel selects the log level: debug, info, warn or error
	EnvLogLevel = "MESH_LOG_LEVEL"
)

func main() {
	logger := newLogger(os.Getenv(EnvLogLevel))
	platform.SetLogger(logger)
	gg.SetLogger(logger)
	logger.Info("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon := ui.AppIcon(); icon != nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	documentsDir := settings.GetDocumentsDirectory()
	if err := platform.CreateDirectoryIfNotExists(documentsDir); err != nil {
		logger.Warn("failed to ensure documents dir", "path", documentsDir, "error", err)
	}

	store, pal := loadPalette(logger)
	s := session.New(pal, session.Config{
		DocumentsDir:    documentsDir,
		HistoryCapacity: history.DefaultCapacity,
		ConstrainEdges:  settings.GetConstrainEdges(),
		ShowPoints:      settings.GetShowPoints(),
		WatchDocuments:  true,
		PaletteStore:    store,
	})

	ui.NewRootUI(myWindow, myApp, s, export.NewService(), settings)
	myWindow.ShowAndRun()
}

// loadPalette reads the stored palette, falling back to the presets
func loadPalette(logger *slog.Logger) (*palette.Store, *palette.Palette) {
	path, err := platform.GetPaletteFile()
	if err != nil {
		logger.Warn("palette persistence disabled", "error", err)
		return nil, palette.NewWithDefaults()
	}
	store := palette.NewStore(path)
	pal, err := store.Load()
	if err != nil {
		logger.Error("failed to load palette, using presets without saving them", "path", path, "error", err)
		return nil, palette.NewWithDefaults()
	}
	return store, pal
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil || level == "" {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
