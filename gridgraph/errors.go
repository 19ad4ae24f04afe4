package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrWallEndpoint indicates a start or goal placed on a wall cell.
	ErrWallEndpoint = errors.New("gridgraph: endpoint is a wall")
	// ErrUnknownSymbol indicates an unrecognized character in a text map.
	ErrUnknownSymbol = errors.New("gridgraph: unknown map symbol")
	// ErrMissingMarker indicates a text map without a start or goal marker.
	ErrMissingMarker = errors.New("gridgraph: missing start or goal marker")
	// ErrDuplicateMarker indicates a text map with more than one start or goal marker.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or goal marker")
)
