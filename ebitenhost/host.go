// Package ebitenhost mounts a squares.Background in an Ebitengine window.
//
// Ebitengine's Update cadence is the frame source: every Update delivers
// pending resize and pointer events, then advances one frame, which draws
// into an offscreen image that Draw copies to the screen.
package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/squares"
)

// Host implements squares.Host and ebiten.Game.
type Host struct {
	squares.Listeners

	frames squares.ManualFrames
	canvas *Canvas

	width, height int
	pendingW      int
	pendingH      int
	sizeChanged   bool

	inside       bool
	lastX, lastY int

	// cursor and focused read pointer state; swapped in tests.
	cursor  func() (int, int)
	focused func() bool

	showFPS      bool
	exitOnEscape bool
}

// New returns a host whose viewport starts at the configured window size.
func New(cfg RunConfig) *Host {
	cfg = cfg.withDefaults()
	return &Host{
		canvas:       NewCanvas(),
		width:        cfg.Width,
		height:       cfg.Height,
		pendingW:     cfg.Width,
		pendingH:     cfg.Height,
		cursor:       ebiten.CursorPosition,
		focused:      ebiten.IsFocused,
		showFPS:      cfg.ShowFPS,
		exitOnEscape: cfg.ExitOnEscape,
	}
}

// ViewportSize implements squares.Viewport.
func (h *Host) ViewportSize() (int, int) {
	return h.width, h.height
}

// SurfaceOrigin implements squares.Origin. The surface fills the window.
func (h *Host) SurfaceOrigin() squares.Vec2 {
	return squares.Vec2{}
}

// Canvas implements squares.Host.
func (h *Host) Canvas() (squares.Canvas, error) {
	return h.canvas, nil
}

// Frames implements squares.Host.
func (h *Host) Frames() squares.FrameSource {
	return &h.frames
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	h.applyResize()
	h.pollPointer()
	h.frames.Advance(1)
	if h.exitOnEscape && ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if img := h.canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if h.showFPS {
		drawFPS(screen)
	}
}

// Layout implements ebiten.Game. The logical screen is the window size in
// device pixels. Size changes are recorded here and delivered from Update.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	w := int(math.Ceil(float64(outsideWidth) * scale))
	ht := int(math.Ceil(float64(outsideHeight) * scale))
	h.layout(w, ht)
	return w, ht
}

func (h *Host) layout(w, ht int) {
	if w != h.pendingW || ht != h.pendingH {
		h.pendingW, h.pendingH = w, ht
		h.sizeChanged = true
	}
}

func (h *Host) applyResize() {
	if !h.sizeChanged {
		return
	}
	h.sizeChanged = false
	h.width, h.height = h.pendingW, h.pendingH
	h.EmitResize()
}

// pollPointer turns the polled cursor into move and leave events. The
// pointer counts as outside when the window is unfocused or the cursor is
// beyond the viewport bounds.
func (h *Host) pollPointer() {
	x, y := h.cursor()
	in := h.focused() && x >= 0 && y >= 0 && x < h.width && y < h.height
	switch {
	case in && (!h.inside || x != h.lastX || y != h.lastY):
		h.inside = true
		h.lastX, h.lastY = x, y
		h.EmitPointerMove(float64(x), float64(y))
	case !in && h.inside:
		h.inside = false
		h.EmitPointerLeave()
	}
}
