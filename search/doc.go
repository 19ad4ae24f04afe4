// Package search implements Greedy Best-First Search (GBFS) and A* over a
// 4-connected gridgraph.Grid with unit step cost and a pluggable heuristic.
//
// Both algorithms share one engine: a frontier.Frontier ordered by
// (key tuple, insertion sequence), a predecessor map, an explored set and the
// same termination rules. They differ only in policy:
//
//   - GBFS keys entries by (h). A node is pushed once, when first discovered.
//     Paths are valid but not necessarily shortest.
//   - A* keys entries by (g+h, g) and tracks the best known g per node. A
//     cheaper path replaces the predecessor and pushes a new entry; the old
//     entry is skipped when popped (lazy deletion). With an admissible
//     heuristic the returned path is a shortest path.
//
// Each call moves through Initialized → Running → {Succeeded, Exhausted}.
// "No path" is a successful call: Path is empty, Status is StatusExhausted and
// Explored counts every node expanded before the frontier ran dry.
//
// Complexity:
//
//   - Time:  O(N log N), N = walkable cells (each push/pop is O(log N)).
//   - Space: O(N) for the frontier, predecessor, cost and explored maps.
//
// Options:
//
//   - WithMaxExplored(n): stop as StatusExhausted after n expansions.
//   - WithOnExpand(fn), WithOnPush(fn): observation hooks.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrInvalidGrid     malformed grid argument.
//   - ErrNilHeuristic                nil heuristic function.
//   - ErrInvalidEndpoint             start/goal out of bounds or on a wall.
//   - ErrOptionViolation             invalid Option value.
//   - ErrUnknownAlgorithm            unknown Algorithm value or name.
//   - ErrCorruptPredecessors         ReconstructChecked on a broken map.
//
// Searches share no mutable state. Compare runs every algorithm × heuristic
// pair concurrently over one grid.
//
// Example usage:
//
//	res, err := search.AStar(g, start, goal, heuristic.Manhattan)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Path), res.Explored)
package search
