package squares

import "math"

// Origin reports where the drawing surface's top-left corner sits in
// viewport coordinates.
type Origin interface {
	SurfaceOrigin() Vec2
}

// PointerTracker maps viewport pointer positions into grid cells. It is fed
// by viewport-wide listeners, so overlapping UI that swallows events over the
// surface does not break hover tracking.
type PointerTracker struct {
	state      *State
	origin     Origin
	squareSize float64
}

func newPointerTracker(state *State, origin Origin, squareSize float64) *PointerTracker {
	return &PointerTracker{state: state, origin: origin, squareSize: squareSize}
}

// Move records the cell under the pointer at viewport position (x, y).
// The cell is computed in scrolled space, so it is the one visually under
// the pointer at this moment regardless of how far the grid has moved.
func (p *PointerTracker) Move(x, y float64) {
	o := p.origin.SurfaceOrigin()
	local := Vec2{X: x - o.X, Y: y - o.Y}
	p.state.hovered = CellAt(local, p.state.offset, p.squareSize)
	p.state.hovering = true
}

// Leave clears the hovered cell.
func (p *PointerTracker) Leave() {
	p.state.hovered = Cell{}
	p.state.hovering = false
}

// CellAt returns the grid cell containing the surface-local point when the
// grid is scrolled by offset.
func CellAt(local, offset Vec2, squareSize float64) Cell {
	return Cell{
		Col: int(math.Floor((local.X + offset.X) / squareSize)),
		Row: int(math.Floor((local.Y + offset.Y) / squareSize)),
	}
}
