package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Reconstruct walks prev backward from goal to start and returns the path in
// start→goal order, both ends included.
//
// prev maps every discovered node to its predecessor; the start node maps to
// itself, which ends the walk. An empty slice is returned when goal is not a
// key of prev, or when the map is corrupt (see ReconstructChecked).
//
// Complexity: O(L) time and memory, L = path length.
func Reconstruct(prev map[gridgraph.Coordinate]gridgraph.Coordinate, start, goal gridgraph.Coordinate) []gridgraph.Coordinate {
	path, err := ReconstructChecked(prev, start, goal)
	if err != nil {
		return []gridgraph.Coordinate{}
	}

	return path
}

// ReconstructChecked is Reconstruct with integrity checks. It returns
// ErrCorruptPredecessors when the walk exceeds len(prev) steps (a cycle),
// follows a link to a node that has no entry, or ends at a self-linked node
// other than start.
func ReconstructChecked(prev map[gridgraph.Coordinate]gridgraph.Coordinate, start, goal gridgraph.Coordinate) ([]gridgraph.Coordinate, error) {
	if _, ok := prev[goal]; !ok {
		return []gridgraph.Coordinate{}, nil
	}

	// build reversed path
	path := make([]gridgraph.Coordinate, 0, 16)
	cur := goal
	for steps := 0; ; steps++ {
		if steps > len(prev) {
			return nil, fmt.Errorf("%w: cycle reached from %v", ErrCorruptPredecessors, goal)
		}
		path = append(path, cur)
		if cur == start {
			break
		}
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no entry", ErrCorruptPredecessors, cur)
		}
		if p == cur {
			return nil, fmt.Errorf("%w: walk ended at %v, not start %v", ErrCorruptPredecessors, cur, start)
		}
		cur = p
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
