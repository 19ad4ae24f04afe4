// Package heuristic provides distance estimates between two grid cells for
// best-first searches over a 4-connected, unit-cost grid.
//
// Heuristics:
//
//   - Manhattan: |Δrow| + |Δcol|. Admissible and consistent for 4-directional
//     unit-cost moves, so A* with it returns shortest paths.
//   - Euclidean: straight-line distance. Admissible, never larger than
//     Manhattan, so it prunes less.
//   - Diagonal: max(|Δrow|, |Δcol|) (Chebyshev). Never larger than Manhattan
//     on integer coordinates, but callers should not rely on it for
//     shortest-path guarantees; it is provided for comparison.
//
// Every heuristic is a pure function: zero iff a == b, symmetric, and safe to
// call from any number of goroutines at once.
package heuristic
