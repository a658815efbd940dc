package squares

// syntheticEvent is one queued host event for a HeadlessHost.
type syntheticEvent struct {
	kind EventType
	x, y float64 // pointer position for EventPointerMove
	w, h int     // viewport size for EventResize
}

// HeadlessHost is a Host with no window. Frames advance only when Step or
// Advance is called, and input is queued with the Inject methods, one event
// consumed per frame, so runs are fully deterministic.
type HeadlessHost struct {
	Listeners

	frames    ManualFrames
	canvas    Canvas
	canvasErr error
	size      Size
	origin    Vec2

	injectQueue []syntheticEvent
	snapshot    func(label string) error
}

// NewHeadlessHost returns a host with a w x h viewport drawing onto canvas.
func NewHeadlessHost(w, h int, canvas Canvas) *HeadlessHost {
	return &HeadlessHost{canvas: canvas, size: Size{W: w, H: h}}
}

// ViewportSize implements Viewport.
func (h *HeadlessHost) ViewportSize() (int, int) {
	return h.size.W, h.size.H
}

// SurfaceOrigin implements Origin.
func (h *HeadlessHost) SurfaceOrigin() Vec2 {
	return h.origin
}

// SetSurfaceOrigin places the surface inside the viewport. Pointer
// coordinates stay viewport-relative.
func (h *HeadlessHost) SetSurfaceOrigin(x, y float64) {
	h.origin = Vec2{X: x, Y: y}
}

// Canvas implements Host.
func (h *HeadlessHost) Canvas() (Canvas, error) {
	if h.canvasErr != nil {
		return nil, h.canvasErr
	}
	return h.canvas, nil
}

// FailCanvas makes every Canvas call fail with err, simulating a host
// without a drawing context, until FailCanvas(nil) restores the canvas.
func (h *HeadlessHost) FailCanvas(err error) {
	h.canvasErr = err
}

// Frames implements Host.
func (h *HeadlessHost) Frames() FrameSource {
	return &h.frames
}

// Frame returns how many frames have run.
func (h *HeadlessHost) Frame() uint64 {
	return h.frames.Frame()
}

// InjectMove queues a pointer move to viewport position (x, y).
func (h *HeadlessHost) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: EventPointerMove, x: x, y: y})
}

// InjectLeave queues the pointer leaving the viewport.
func (h *HeadlessHost) InjectLeave() {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: EventPointerLeave})
}

// InjectResize queues a viewport resize.
func (h *HeadlessHost) InjectResize(width, height int) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: EventResize, w: width, h: height})
}

// InjectPath queues a pointer sweep from (fromX, fromY) to (toX, toY) over
// the given number of frames, endpoints included. Minimum is 2.
func (h *HeadlessHost) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	for i := range frames {
		t := float64(i) / float64(frames-1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Queued returns the number of injected events not yet delivered.
func (h *HeadlessHost) Queued() int {
	return len(h.injectQueue)
}

// Step delivers at most one queued event and then runs one frame.
func (h *HeadlessHost) Step() {
	h.processInjected()
	h.frames.Advance(1)
}

// Advance runs n frames without delivering queued events.
func (h *HeadlessHost) Advance(n int) {
	h.frames.Advance(n)
}

// processInjected pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed.
func (h *HeadlessHost) processInjected() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	switch evt.kind {
	case EventPointerMove:
		h.EmitPointerMove(evt.x, evt.y)
	case EventPointerLeave:
		h.EmitPointerLeave()
	case EventResize:
		h.size = Size{W: evt.w, H: evt.h}
		h.EmitResize()
	}
	return true
}

// SetSnapshotFunc installs the function Snapshot delegates to, typically a
// canvas PNG writer.
func (h *HeadlessHost) SetSnapshotFunc(fn func(label string) error) {
	h.snapshot = fn
}

// Snapshot captures the current canvas under label. Without a snapshot
// function it does nothing.
func (h *HeadlessHost) Snapshot(label string) error {
	if h.snapshot == nil {
		return nil
	}
	return h.snapshot(label)
}
