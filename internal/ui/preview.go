package ui

import (
	"image"
	"sync"

	"golang.org/x/image/draw"

	"github.com/ytget/mesh-designer/internal/interp"
	"github.com/ytget/mesh-designer/internal/platform"
	"github.com/ytget/mesh-designer/internal/session"
)

// previewKey identifies a rendered preview
type previewKey struct {
	revision      uint64
	width, height int
	area          image.Rectangle
}

// previewRequest asks for the snapshot to be drawn into area of a
// width x height image
type previewRequest struct {
	snap    session.RenderSnapshot
	key     previewKey
	maxSide int
}

// previewWorker renders previews off the UI thread. Only the newest pending
// request is kept, and results older than the newest requested revision are
// dropped.
type previewWorker struct {
	requests chan previewRequest
	done     chan struct{}
	once     sync.Once
	onReady  func()

	mu     sync.Mutex
	img    image.Image
	key    previewKey
	latest uint64
}

func newPreviewWorker(onReady func()) *previewWorker {
	w := &previewWorker{
		requests: make(chan previewRequest, 1),
		done:     make(chan struct{}),
		onReady:  onReady,
	}
	go w.loop()
	return w
}

// current returns the last finished preview and its key
func (w *previewWorker) current() (image.Image, previewKey) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.img, w.key
}

// request queues req, replacing any request that has not started yet.
// It must only be called from one goroutine.
func (w *previewWorker) request(req previewRequest) {
	w.mu.Lock()
	if req.key.revision > w.latest {
		w.latest = req.key.revision
	}
	w.mu.Unlock()

	select {
	case <-w.requests:
	default:
	}
	select {
	case w.requests <- req:
	default:
	}
}

func (w *previewWorker) stop() {
	w.once.Do(func() { close(w.done) })
}

func (w *previewWorker) loop() {
	for {
		select {
		case <-w.done:
			return
		case req := <-w.requests:
			img, err := renderPreview(req)
			if err != nil {
				platform.Logger().Warn("preview render failed", "revision", req.key.revision, "error", err)
				continue
			}

			w.mu.Lock()
			stale := req.key.revision < w.latest
			if !stale {
				w.img, w.key = img, req.key
			}
			w.mu.Unlock()

			if !stale && w.onReady != nil {
				w.onReady()
			}
		}
	}
}

func renderPreview(req previewRequest) (image.Image, error) {
	field, err := req.snap.Field()
	if err != nil {
		return nil, err
	}

	area := req.key.area
	out := image.NewNRGBA(image.Rect(0, 0, req.key.width, req.key.height))
	if area.Empty() {
		return out, nil
	}

	img := interp.RenderPreview(field, req.snap.RenderOptions(area.Dx(), area.Dy()), req.maxSide)
	draw.Draw(out, area, img, image.Point{}, draw.Src)
	return out, nil
}
