package squares

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vec2 is a 2D vector used for positions and scroll offsets.
type Vec2 struct {
	X, Y float64
}

// Size is the integer size of a drawing surface in device pixels.
type Size struct {
	W, H int
}

// Cell identifies one square of the grid by integer column and row.
// Column 0 / row 0 is the cell whose unscrolled origin is the surface origin.
type Cell struct {
	Col, Row int
}

// Direction selects the axis and sign the grid scrolls along.
type Direction uint8

const (
	DirectionRight    Direction = iota // grid drifts to the right (default)
	DirectionLeft                      // grid drifts to the left
	DirectionUp                        // grid drifts upward
	DirectionDown                      // grid drifts downward
	DirectionDiagonal                  // grid drifts right and down
)

var directionNames = [...]string{
	DirectionRight:    "right",
	DirectionLeft:     "left",
	DirectionUp:       "up",
	DirectionDown:     "down",
	DirectionDiagonal: "diagonal",
}

// String returns the configuration name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a configuration name (case-insensitive) into a
// Direction. The empty string maps to DirectionRight.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DirectionRight, nil
	}
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return DirectionRight, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, s)
}

// step returns the per-axis sign applied to the scroll speed each frame.
// Offsets are subtracted from cell origins when drawing, so a negative step
// moves the grid toward positive screen coordinates.
func (d Direction) step() (dx, dy float64) {
	switch d {
	case DirectionLeft:
		return 1, 0
	case DirectionUp:
		return 0, 1
	case DirectionDown:
		return 0, -1
	case DirectionDiagonal:
		return -1, -1
	default:
		return -1, 0
	}
}

// MarshalYAML implements yaml.Marshaler.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EventType identifies a kind of host event a Background listens to.
type EventType uint8

const (
	EventResize       EventType = iota // viewport dimensions changed
	EventPointerMove                   // pointer moved anywhere in the viewport
	EventPointerLeave                  // pointer left the viewport
)

func (e EventType) String() string {
	switch e {
	case EventResize:
		return "resize"
	case EventPointerMove:
		return "pointermove"
	case EventPointerLeave:
		return "pointerleave"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(e))
	}
}
