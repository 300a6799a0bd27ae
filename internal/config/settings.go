package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/mesh-designer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyShowPoints     = "show_points"
	KeyConstrainEdges = "constrain_edges"
	KeyExportScale    = "export_scale"
	KeyDocumentsDir   = "documents_directory"
	KeyExportDir      = "export_directory"
	KeyPreviewMaxSide = "preview_max_side"
	KeyCodeFormat     = "code_format"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultShowPoints     = false
	DefaultConstrainEdges = true
	DefaultExportScale    = 1
	DefaultPreviewMaxSide = 512
	DefaultCodeFormat     = "compose"
	DefaultLanguage       = "system"
)

// Bounds
const (
	MinExportScale    = 1
	MaxExportScale    = 3
	MinPreviewMaxSide = 64
	MaxPreviewMaxSide = 2048
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetShowPoints returns whether control point handles are drawn
func (s *Settings) GetShowPoints() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowPoints, DefaultShowPoints)
}

// SetShowPoints sets whether control point handles are drawn
func (s *Settings) SetShowPoints(show bool) {
	s.app.Preferences().SetBool(KeyShowPoints, show)
}

// GetConstrainEdges returns whether boundary points stay pinned to the canvas edge
func (s *Settings) GetConstrainEdges() bool {
	return s.app.Preferences().BoolWithFallback(KeyConstrainEdges, DefaultConstrainEdges)
}

// SetConstrainEdges sets whether boundary points stay pinned to the canvas edge
func (s *Settings) SetConstrainEdges(constrain bool) {
	s.app.Preferences().SetBool(KeyConstrainEdges, constrain)
}

// GetExportScale returns the PNG export scale factor
func (s *Settings) GetExportScale() int {
	value := s.app.Preferences().IntWithFallback(KeyExportScale, DefaultExportScale)
	if value < MinExportScale || value > MaxExportScale {
		s.SetExportScale(value)
		return clamp(value, MinExportScale, MaxExportScale)
	}
	return value
}

// SetExportScale sets the PNG export scale factor, clamped to [1, 3]
func (s *Settings) SetExportScale(scale int) {
	s.app.Preferences().SetInt(KeyExportScale, clamp(scale, MinExportScale, MaxExportScale))
}

// GetPreviewMaxSide returns the longest side, in pixels, of interactive previews
func (s *Settings) GetPreviewMaxSide() int {
	value := s.app.Preferences().IntWithFallback(KeyPreviewMaxSide, DefaultPreviewMaxSide)
	if value < MinPreviewMaxSide || value > MaxPreviewMaxSide {
		s.SetPreviewMaxSide(value)
		return clamp(value, MinPreviewMaxSide, MaxPreviewMaxSide)
	}
	return value
}

// SetPreviewMaxSide sets the preview size bound, clamped to [64, 2048]
func (s *Settings) SetPreviewMaxSide(side int) {
	s.app.Preferences().SetInt(KeyPreviewMaxSide, clamp(side, MinPreviewMaxSide, MaxPreviewMaxSide))
}

// GetDocumentsDirectory returns the directory for saved documents with ~
// expanded, defaulting to ~/.mesh/documents
func (s *Settings) GetDocumentsDirectory() string {
	return s.directory(KeyDocumentsDir, platform.GetDocumentsDir)
}

// SetDocumentsDirectory sets the directory for saved documents
func (s *Settings) SetDocumentsDirectory(dir string) {
	s.app.Preferences().SetString(KeyDocumentsDir, dir)
}

// GetExportDirectory returns the directory exported images are written to,
// defaulting to the desktop
func (s *Settings) GetExportDirectory() string {
	return s.directory(KeyExportDir, platform.GetDesktopDir)
}

// SetExportDirectory sets the directory exported images are written to
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetCodeFormat returns the default code export format name
func (s *Settings) GetCodeFormat() string {
	format := s.app.Preferences().String(KeyCodeFormat)
	if format == "" {
		s.SetCodeFormat(DefaultCodeFormat)
		return DefaultCodeFormat
	}
	return format
}

// SetCodeFormat sets the default code export format name
func (s *Settings) SetCodeFormat(format string) {
	if format == "" {
		format = DefaultCodeFormat
	}
	s.app.Preferences().SetString(KeyCodeFormat, format)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// directory reads a path preference, storing the default on first use
func (s *Settings) directory(key string, fallback func() (string, error)) string {
	dir := s.app.Preferences().String(key)
	if dir == "" {
		def, err := fallback()
		if err != nil {
			platform.Logger().Warn("no default directory", "key", key, "error", err)
			return ""
		}
		s.app.Preferences().SetString(key, def)
		return def
	}
	expanded, err := platform.ExpandPath(dir)
	if err != nil {
		return dir
	}
	return expanded
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
