package ui

import (
	"image"
	"image/color"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mesh-designer/internal/interp"
	"github.com/ytget/mesh-designer/internal/platform"
	"github.com/ytget/mesh-designer/internal/session"
)

var handleStroke = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// MeshCanvas shows the gradient preview with draggable control point handles
type MeshCanvas struct {
	widget.BaseWidget

	session *session.Session
	maxSide atomic.Int64
	preview *previewWorker

	raster      *canvas.Raster
	handleLayer *fyne.Container
	handles     []*canvas.Circle

	drag       dragState
	touchStart time.Time
	selected   struct {
		row, col int
		ok       bool
	}
	onSelect func(row, col int, ok bool)
}

// NewMeshCanvas creates the canvas for s. Previews are rendered with their
// longer side limited to maxSide pixels.
func NewMeshCanvas(s *session.Session, maxSide int) *MeshCanvas {
	c := &MeshCanvas{
		session:     s,
		handleLayer: container.NewWithoutLayout(),
	}
	c.SetPreviewMaxSide(maxSide)
	c.raster = canvas.NewRaster(c.generate)
	c.preview = newPreviewWorker(func() {
		fyne.Do(c.raster.Refresh)
	})
	c.ExtendBaseWidget(c)
	return c
}

// SetSelectCallback sets the function called when the selected point changes
func (c *MeshCanvas) SetSelectCallback(callback func(row, col int, ok bool)) {
	c.onSelect = callback
}

// SetPreviewMaxSide changes the preview size limit
func (c *MeshCanvas) SetPreviewMaxSide(maxSide int) {
	if maxSide < 1 {
		maxSide = interp.DefaultPreviewMaxSide
	}
	c.maxSide.Store(int64(maxSide))
}

// Selected returns the selected control point, if any
func (c *MeshCanvas) Selected() (row, col int, ok bool) {
	return c.selected.row, c.selected.col, c.selected.ok
}

// ClearSelection deselects the current point
func (c *MeshCanvas) ClearSelection() {
	c.setSelected(0, 0, false)
}

// Close stops the background preview renderer
func (c *MeshCanvas) Close() {
	c.preview.stop()
}

// CreateRenderer implements fyne.Widget
func (c *MeshCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &meshCanvasRenderer{canvas: c}
}

// Tapped selects the handle under the pointer
func (c *MeshCanvas) Tapped(ev *fyne.PointEvent) {
	snap := c.session.Snapshot()
	if !snap.ShowPoints {
		return
	}
	p, ok := hitTest(snap.Grid.Flatten(), c.viewport(snap), ev.Position, HandleHitRadius)
	c.setSelected(p.Row, p.Col, ok)
}

// DoubleTapped toggles handle visibility
func (c *MeshCanvas) DoubleTapped(*fyne.PointEvent) {
	c.session.ToggleShowPoints()
}

// Dragged moves the handle the drag started on
func (c *MeshCanvas) Dragged(ev *fyne.DragEvent) {
	if c.drag.missed {
		return
	}
	snap := c.session.Snapshot()
	view := c.viewport(snap)
	if !c.drag.active {
		if !snap.ShowPoints {
			c.drag.miss()
			return
		}
		start := ev.Position.Subtract(ev.Dragged)
		p, ok := hitTest(snap.Grid.Flatten(), view, start, HandleHitRadius)
		if !ok {
			c.drag.miss()
			return
		}
		c.beginDrag(p.Row, p.Col)
	}

	if err := c.session.DragPoint(c.drag.row, c.drag.col, view.toMesh(ev.Position)); err != nil {
		platform.Logger().Warn("drag failed", "row", c.drag.row, "col", c.drag.col, "error", err)
		c.endDrag()
		c.drag.miss()
	}
}

// DragEnd finishes the current drag
func (c *MeshCanvas) DragEnd() {
	c.endDrag()
}

func (c *MeshCanvas) beginDrag(row, col int) {
	c.drag.start(row, col)
	c.session.BeginDrag()
	c.setSelected(row, col, true)
}

func (c *MeshCanvas) endDrag() {
	if c.drag.stop() {
		c.session.EndDrag()
	}
}

func (c *MeshCanvas) setSelected(row, col int, ok bool) {
	c.selected.row, c.selected.col, c.selected.ok = row, col, ok
	if c.onSelect != nil {
		c.onSelect(row, col, ok)
	}
	c.Refresh()
}

// viewport returns where the gradient sits inside the widget
func (c *MeshCanvas) viewport(snap session.RenderSnapshot) viewport {
	size := c.Size()
	w, h := snap.CanvasSize(int(size.Width), int(size.Height))
	return fitViewport(size, float32(w), float32(h))
}

// generate feeds the raster with the newest finished preview and asks for
// a new one when the state or size changed
func (c *MeshCanvas) generate(w, h int) image.Image {
	snap := c.session.Snapshot()
	key := previewKey{
		revision: snap.Revision,
		width:    w,
		height:   h,
		area:     c.pixelArea(snap, w, h),
	}

	img, have := c.preview.current()
	if have != key {
		c.preview.request(previewRequest{snap: snap, key: key, maxSide: int(c.maxSide.Load())})
	}
	if img == nil {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	return img
}

// pixelArea converts the viewport to raster pixels
func (c *MeshCanvas) pixelArea(snap session.RenderSnapshot, w, h int) image.Rectangle {
	size := c.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return image.Rectangle{}
	}
	view := c.viewport(snap)
	sx, sy := float32(w)/size.Width, float32(h)/size.Height
	return image.Rect(
		int(view.origin.X*sx),
		int(view.origin.Y*sy),
		int((view.origin.X+view.size.Width)*sx),
		int((view.origin.Y+view.size.Height)*sy),
	)
}

// updateHandles positions one circle per control point
func (c *MeshCanvas) updateHandles() {
	snap := c.session.Snapshot()
	points := snap.Grid.Flatten()

	if len(c.handles) != len(points) {
		c.handles = make([]*canvas.Circle, len(points))
		objects := make([]fyne.CanvasObject, len(points))
		for i := range points {
			circle := canvas.NewCircle(color.Transparent)
			circle.StrokeColor = handleStroke
			circle.StrokeWidth = HandleBorder
			c.handles[i] = circle
			objects[i] = circle
		}
		c.handleLayer.Objects = objects
		if c.selected.ok && (c.selected.row >= snap.Grid.Rows() || c.selected.col >= snap.Grid.Cols()) {
			c.selected.ok = false
		}
	}

	if !snap.ShowPoints {
		c.handleLayer.Hide()
		return
	}
	c.handleLayer.Show()

	view := c.viewport(snap)
	for i, p := range points {
		radius := HandleRadius
		if c.selected.ok && p.Row == c.selected.row && p.Col == c.selected.col {
			radius += SelectedHandleGrow
		}
		center := view.toCanvas(p.Position())
		circle := c.handles[i]
		circle.FillColor = snap.Palette.Resolve(p.ColorID).NRGBA()
		circle.Resize(fyne.NewSize(2*radius, 2*radius))
		circle.Move(fyne.NewPos(center.X-radius, center.Y-radius))
		circle.Refresh()
	}
}

type meshCanvasRenderer struct {
	canvas *MeshCanvas
}

func (r *meshCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
	r.canvas.handleLayer.Resize(size)
	r.canvas.updateHandles()
}

func (r *meshCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CanvasMinSize, CanvasMinSize)
}

func (r *meshCanvasRenderer) Refresh() {
	r.canvas.updateHandles()
	r.canvas.raster.Refresh()
}

func (r *meshCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster, r.canvas.handleLayer}
}

func (r *meshCanvasRenderer) Destroy() {}
