package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrUnknownHeuristic is returned by ByName for an unrecognized name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func estimates the remaining distance from a to b. Results must be ≥ 0.
type Func func(a, b gridgraph.Coordinate) float64

// Canonical heuristic names, in reporting order.
const (
	NameManhattan = "manhattan"
	NameEuclidean = "euclidean"
	NameDiagonal  = "diagonal"
)

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b gridgraph.Coordinate) float64 {
	dr, dc := deltas(a, b)

	return float64(dr + dc)
}

// Euclidean returns the straight-line distance between cell centers.
func Euclidean(a, b gridgraph.Coordinate) float64 {
	dr, dc := deltas(a, b)

	return math.Hypot(float64(dr), float64(dc))
}

// Diagonal returns max(|Δrow|, |Δcol|).
func Diagonal(a, b gridgraph.Coordinate) float64 {
	dr, dc := deltas(a, b)

	return float64(max(dr, dc))
}

// Names lists the canonical names in reporting order.
func Names() []string {
	return []string{NameManhattan, NameEuclidean, NameDiagonal}
}

// ByName resolves a heuristic by case-insensitive name.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameManhattan:
		return Manhattan, nil
	case NameEuclidean:
		return Euclidean, nil
	case NameDiagonal, "chebyshev":
		return Diagonal, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// deltas returns the absolute row and column differences.
func deltas(a, b gridgraph.Coordinate) (dr, dc int) {
	dr, dc = a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr, dc
}
