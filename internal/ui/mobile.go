package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Split between canvas and side panel on desktop
const canvasSplitOffset = 0.72

// isMobileDevice checks if the app is running on a phone or tablet
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// adaptiveLayout places the canvas and the side panel next to each other on
// desktop. On mobile devices the panel gets its own tab in portrait and sits
// beside the canvas in landscape.
func adaptiveLayout(canvasObj, panel fyne.CanvasObject, panelTitle string) fyne.CanvasObject {
	if !isMobileDevice() {
		split := container.NewHSplit(canvasObj, container.NewVScroll(panel))
		split.SetOffset(canvasSplitOffset)
		return split
	}

	if fyne.IsHorizontal(fyne.CurrentDevice().Orientation()) {
		return container.NewBorder(nil, nil, nil, container.NewVScroll(panel), canvasObj)
	}
	return container.NewAppTabs(
		container.NewTabItem("Mesh", canvasObj),
		container.NewTabItem(panelTitle, container.NewVScroll(panel)),
	)
}
