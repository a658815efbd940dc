// Package termhost mounts a squares.Background in a terminal using tcell.
//
// Each terminal cell shows two vertically stacked pixels (upper half block),
// so a W x H terminal is a W x 2H viewport. Mouse motion anywhere in the
// terminal moves the pointer; losing focus counts as the pointer leaving.
package termhost

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/squares"
)

// ErrNoScreen is returned by Canvas when the host has no tcell screen.
var ErrNoScreen = errors.New("termhost: no screen")

// Host implements squares.Host on a tcell.Screen.
type Host struct {
	squares.Listeners

	frames squares.ManualFrames
	screen tcell.Screen
	canvas *Canvas
}

// New returns a host drawing onto screen, compositing over base.
func New(screen tcell.Screen, base squares.Color) *Host {
	return &Host{screen: screen, canvas: NewCanvas(base)}
}

// ViewportSize implements squares.Viewport: terminal columns by twice the
// terminal rows.
func (h *Host) ViewportSize() (int, int) {
	if h.screen == nil {
		return 0, 0
	}
	cols, rows := h.screen.Size()
	return cols, rows * 2
}

// SurfaceOrigin implements squares.Origin.
func (h *Host) SurfaceOrigin() squares.Vec2 {
	return squares.Vec2{}
}

// Canvas implements squares.Host.
func (h *Host) Canvas() (squares.Canvas, error) {
	if h.screen == nil {
		return nil, ErrNoScreen
	}
	return h.canvas, nil
}

// Frames implements squares.Host.
func (h *Host) Frames() squares.FrameSource {
	return &h.frames
}

// HandleEvent dispatches one tcell event to the registered listeners and
// reports whether the user asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.EmitResize()
	case *tcell.EventMouse:
		x, y := ev.Position()
		// Pointer sits at the center of the cell's two pixels.
		h.EmitPointerMove(float64(x)+0.5, float64(y*2)+1)
	case *tcell.EventFocus:
		if !ev.Focused {
			h.EmitPointerLeave()
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q'
		}
	}
	return false
}

// Tick runs one frame and flushes it to the screen.
func (h *Host) Tick() {
	h.frames.Advance(1)
	h.canvas.Flush(h.screen)
	h.screen.Show()
}
