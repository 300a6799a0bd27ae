package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconPoint    = "◉"
	IconNone     = "∅"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	UnsavedMarker      = "*"
	PointLabelFormat   = "(%d, %d)"
)

// Window and panel sizing
const (
	SidePanelWidth   float32 = 260
	SwatchSize       float32 = 22
	CanvasMinSize    float32 = 200
	SizeEntryWidth   float32 = 72
	SettingsDialogW  float32 = 520
	SettingsDialogH  float32 = 420
	HexEntryMinWidth float32 = 110
)

// Control point handles
const (
	HandleRadius       float32 = 7
	HandleBorder       float32 = 1.5
	HandleHitRadius    float32 = 14
	SelectedHandleGrow float32 = 3
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)

// Touch handling
const (
	LongPressDuration = 500 * time.Millisecond
)
