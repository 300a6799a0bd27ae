package ui

import (
	"time"

	"fyne.io/fyne/v2/driver/mobile"
)

// TouchDown grabs the handle under the finger so the drag starts exactly
// where it was touched
func (c *MeshCanvas) TouchDown(ev *mobile.TouchEvent) {
	c.touchStart = time.Now()
	snap := c.session.Snapshot()
	if c.drag.active {
		return
	}
	if !snap.ShowPoints {
		c.drag.miss()
		return
	}
	p, ok := hitTest(snap.Grid.Flatten(), c.viewport(snap), ev.Position, HandleHitRadius)
	if !ok {
		c.drag.miss()
		return
	}
	c.beginDrag(p.Row, p.Col)
}

// TouchUp ends a drag. A long press without movement toggles handle
// visibility, matching a double click on desktop.
func (c *MeshCanvas) TouchUp(*mobile.TouchEvent) {
	long := time.Since(c.touchStart) >= LongPressDuration
	dragging := c.drag.active
	c.endDrag()
	if long && !dragging {
		c.session.ToggleShowPoints()
	}
}

// TouchCancel ends a drag
func (c *MeshCanvas) TouchCancel(*mobile.TouchEvent) {
	c.endDrag()
}
