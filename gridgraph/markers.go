package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Text map symbols understood by ParseMarkers.
const (
	symbolFree  = '.'
	symbolWall  = '#'
	symbolStart = 'S'
	symbolGoal  = 'G'
)

// ParseMarkers builds a Grid from a text map and extracts its endpoints.
//
// Each string is one row. Recognized symbols:
//
//	'.' or '0'  free cell
//	'#' or '1'  wall
//	'S'         start (stored as a free cell)
//	'G'         goal  (stored as a free cell)
//
// Spaces and tabs inside a row are ignored, so both "S..#" and "S 0 0 1" work.
// Exactly one S and one G are required.
//
// Errors: ErrUnknownSymbol, ErrMissingMarker, ErrDuplicateMarker, and the
// NewGrid errors for empty or ragged maps.
func ParseMarkers(rows []string) (g *Grid, start, goal Coordinate, err error) {
	var haveStart, haveGoal bool
	cells := make([][]CellState, 0, len(rows))
	for r, line := range rows {
		row := make([]CellState, 0, len(line))
		for _, ch := range line {
			if ch == ' ' || ch == '\t' {
				continue
			}
			c := Coordinate{Row: r, Col: len(row)}
			switch ch {
			case symbolFree, '0':
				row = append(row, Free)
			case symbolWall, '1':
				row = append(row, Wall)
			case symbolStart:
				if haveStart {
					return nil, start, goal, fmt.Errorf("%w: second S at %v", ErrDuplicateMarker, c)
				}
				haveStart, start = true, c
				row = append(row, Free)
			case symbolGoal:
				if haveGoal {
					return nil, start, goal, fmt.Errorf("%w: second G at %v", ErrDuplicateMarker, c)
				}
				haveGoal, goal = true, c
				row = append(row, Free)
			default:
				return nil, start, goal, fmt.Errorf("%w: %q at %v", ErrUnknownSymbol, ch, c)
			}
		}
		cells = append(cells, row)
	}

	g, err = NewGrid(cells)
	if err != nil {
		return nil, start, goal, err
	}
	if !haveStart || !haveGoal {
		return nil, start, goal, fmt.Errorf("%w: start=%t goal=%t", ErrMissingMarker, haveStart, haveGoal)
	}

	return g, start, goal, nil
}

// ReadMarkers reads a text map from r, one row per line, and hands it to
// ParseMarkers. Blank lines and lines starting with "//" are skipped.
func ReadMarkers(r io.Reader) (*Grid, Coordinate, Coordinate, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, Coordinate{}, Coordinate{}, fmt.Errorf("gridgraph: read map: %w", err)
	}

	return ParseMarkers(rows)
}
