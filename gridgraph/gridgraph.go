package gridgraph

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]CellState) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	g := &Grid{rows: h, cols: w, cells: make([]CellState, 0, h*w)}
	for _, row := range cells {
		for _, s := range row {
			if s != Free {
				s = Wall
			} else {
				g.walkable++
			}
			g.cells = append(g.cells, s)
		}
	}

	return g, nil
}

// FromInts builds a Grid from the numeric encoding 0 = free, anything else = wall.
func FromInts(values [][]int) (*Grid, error) {
	cells := make([][]CellState, len(values))
	for r, row := range values {
		cells[r] = make([]CellState, len(row))
		for c, v := range row {
			if v != 0 {
				cells[r][c] = Wall
			}
		}
	}

	return NewGrid(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// WalkableCount returns the number of Free cells.
func (g *Grid) WalkableCount() int { return g.walkable }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cell returns the state of c. Out-of-bounds coordinates read as Wall.
func (g *Grid) Cell(c Coordinate) CellState {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[g.index(c)]
}

// IsWalkable reports whether c is in bounds and Free.
// Complexity: O(1).
func (g *Grid) IsWalkable(c Coordinate) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == Free
}

// Neighbors4 returns the walkable orthogonal neighbors of c in the fixed
// order (row+1,col), (row-1,col), (row,col+1), (row,col-1).
// Callers rely on this order for deterministic tie-breaking.
func (g *Grid) Neighbors4(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets4))
	for _, d := range neighborOffsets4 {
		n := c.Add(d[0], d[1])
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}

	return out
}

// ValidateEndpoint checks that c can serve as a search start or goal.
// Returns ErrOutOfBounds or ErrWallEndpoint wrapped with the coordinate.
func (g *Grid) ValidateEndpoint(c Coordinate) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	if g.cells[g.index(c)] == Wall {
		return fmt.Errorf("%w: %v", ErrWallEndpoint, c)
	}

	return nil
}

// Strings renders the grid with '.' for free and '#' for wall cells,
// one string per row.
func (g *Grid) Strings() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf[c] = symbolFree
			if g.cells[r*g.cols+c] == Wall {
				buf[c] = symbolWall
			}
		}
		out[r] = string(buf)
	}

	return out
}

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}
