package squares

import "fmt"

// Viewport reports the current size of the host viewport in device pixels.
type Viewport interface {
	ViewportSize() (w, h int)
}

// Surface keeps the canvas dimensions equal to the viewport.
type Surface struct {
	state  *State
	canvas Canvas
}

func newSurface(state *State, canvas Canvas) *Surface {
	return &Surface{state: state, canvas: canvas}
}

// Resize reads the viewport size and reassigns the surface dimensions.
// Negative sizes are clamped to zero. Canvas contents do not survive a
// resize; the next frame repaints everything.
func (s *Surface) Resize(vp Viewport) error {
	w, h := vp.ViewportSize()
	w, h = max(w, 0), max(h, 0)
	s.state.surface = Size{W: w, H: h}
	if err := s.canvas.SetSize(w, h); err != nil {
		return fmt.Errorf("resize surface to %dx%d: %w", w, h, err)
	}
	return nil
}

// Size returns the current surface size.
func (s *Surface) Size() Size {
	return s.state.surface
}
