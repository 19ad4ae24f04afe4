// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Coordinate addresses a single grid cell by row and column.
// It is a comparable value type and is used directly as a map key.
type Coordinate struct {
	Row, Col int
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String renders c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset (dr, dc).
func (c Coordinate) Add(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// CellState is the occupancy of a single cell.
type CellState uint8

const (
	// Free cells can be entered.
	Free CellState = iota
	// Wall cells block movement.
	Wall
)

// String returns "free" or "wall".
func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// neighborOffsets4 lists the 4-connected moves in the canonical expansion
// order: down, up, right, left. Tie-breaking in every search depends on it.
var neighborOffsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rectangular occupancy map. It is immutable once built and safe
// to share by pointer across concurrent searches.
// cells is stored row-major: cells[r*cols+c].
type Grid struct {
	rows, cols int
	cells      []CellState
	walkable   int
}
