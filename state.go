package squares

// State is the mutable state of one mounted Background. It is created at
// mount and handed explicitly to the three owners, each of which writes only
// its own fields:
//
//   - Animator writes offset
//   - PointerTracker writes hovered/hovering
//   - Surface writes surface
//
// Everything else reads through the accessors.
type State struct {
	offset   Vec2
	hovered  Cell
	hovering bool
	surface  Size
}

// Offset returns the current scroll offset. Each component is in
// [0, SquareSize).
func (s *State) Offset() Vec2 {
	return s.offset
}

// Hovered returns the cell under the pointer. ok is false when the pointer
// is outside the viewport or has not moved yet.
func (s *State) Hovered() (cell Cell, ok bool) {
	return s.hovered, s.hovering
}

// SurfaceSize returns the surface size recorded by the last resize.
func (s *State) SurfaceSize() Size {
	return s.surface
}
