package squares

import "math"

// GridCell is one cell of the visible grid with its on-surface origin.
type GridCell struct {
	Cell Cell
	X, Y float64 // top-left corner on the surface, scroll applied
}

// EachVisibleCell calls fn for every cell whose unscrolled origin lies in
// [-squareSize, W+squareSize] x [-squareSize, H+squareSize], column-major,
// stopping early if fn returns false. The extra cell of margin on each side
// keeps wraparound from exposing a gap at the surface edge.
func EachVisibleCell(size Size, offset Vec2, squareSize float64, fn func(GridCell) bool) {
	if squareSize <= 0 || size.W < 0 || size.H < 0 {
		return
	}
	ox := math.Mod(offset.X, squareSize)
	oy := math.Mod(offset.Y, squareSize)
	lastCol := int(math.Floor((float64(size.W) + squareSize) / squareSize))
	lastRow := int(math.Floor((float64(size.H) + squareSize) / squareSize))
	for col := -1; col <= lastCol; col++ {
		x := float64(col)*squareSize - ox
		for row := -1; row <= lastRow; row++ {
			gc := GridCell{
				Cell: Cell{Col: col, Row: row},
				X:    x,
				Y:    float64(row)*squareSize - oy,
			}
			if !fn(gc) {
				return
			}
		}
	}
}

// VisibleCellCount returns how many cells EachVisibleCell visits.
func VisibleCellCount(size Size, squareSize float64) int {
	if squareSize <= 0 || size.W < 0 || size.H < 0 {
		return 0
	}
	cols := int(math.Floor((float64(size.W)+squareSize)/squareSize)) + 2
	rows := int(math.Floor((float64(size.H)+squareSize)/squareSize)) + 2
	return cols * rows
}

// wrap reduces v into [0, m).
func wrap(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}
