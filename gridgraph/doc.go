// Package gridgraph treats a rectangular Free/Wall occupancy map as an
// implicit 4-connected graph with unit step cost.
//
// What:
//
//   - Grid wraps a deep-copied, immutable cell matrix; Coordinate{Row, Col}
//     addresses a cell and is a comparable map key.
//   - Neighbors4 yields walkable orthogonal neighbors in a fixed order:
//     down, up, right, left. Searches built on it break ties deterministically.
//   - ParseMarkers / ReadMarkers turn a text map with S and G markers into a
//     Grid plus start and goal coordinates.
//   - ConnectedComponents / ComponentOf identify reachable regions.
//   - ShortestSteps is an exhaustive BFS used as the ground truth for
//     heuristic search results.
//
// Why:
//
//   - Game maps and mazes: which cells can reach which.
//   - Search testing: compare heuristic results against an exact oracle.
//
// Complexity:
//
//   - NewGrid:             O(R×C) time and memory.
//   - Neighbors4:          O(1).
//   - ConnectedComponents: O(R×C×4), Memory: O(R×C).
//   - ShortestSteps:       O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds / ErrWallEndpoint: returned by ValidateEndpoint.
//   - ErrUnknownSymbol / ErrMissingMarker / ErrDuplicateMarker: text map parsing.
//
// A Grid is read-only after construction and may be shared freely between
// goroutines.
package gridgraph
