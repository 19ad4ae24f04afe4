package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// GBFS runs Greedy Best-First Search from start to goal on g.
//
// The frontier is keyed by (h(node, goal)) alone. A neighbor is pushed only
// the first time it is discovered, so GBFS commits to early choices and its
// path is not guaranteed to be shortest.
//
// An unreachable goal is not an error: the result has an empty Path,
// StatusExhausted, and Explored equal to the size of start's component.
// Panics raised by h propagate unchanged.
//
// Complexity: O(N log N) time, O(N) space, N = walkable cells.
func GBFS(g *gridgraph.Grid, start, goal gridgraph.Coordinate, h heuristic.Func, opts ...Option) (*Result, error) {
	return Run(AlgorithmGBFS, g, start, goal, h, opts...)
}

// AStar runs A* from start to goal on g with unit step cost.
//
// The frontier is keyed by (g+h, g). A neighbor's cost and predecessor are
// replaced whenever g+1 is strictly cheaper than the recorded cost; popped
// entries carrying a cost above the best known one are skipped. With an
// admissible heuristic (Manhattan, Euclidean) the path is a shortest path.
//
// Complexity: O(N log N) time, O(N) space, N = walkable cells.
func AStar(g *gridgraph.Grid, start, goal gridgraph.Coordinate, h heuristic.Func, opts ...Option) (*Result, error) {
	return Run(AlgorithmAStar, g, start, goal, h, opts...)
}

// Run executes alg. Inputs are validated in order before anything is pushed:
//  1. alg must be known (ErrUnknownAlgorithm).
//  2. g must be non-nil (ErrNilGrid) and non-empty (ErrInvalidGrid).
//  3. h must be non-nil (ErrNilHeuristic).
//  4. options must be valid (ErrOptionViolation).
//  5. start, then goal, must be in bounds and free (ErrInvalidEndpoint).
func Run(alg Algorithm, g *gridgraph.Grid, start, goal gridgraph.Coordinate, h heuristic.Func, opts ...Option) (*Result, error) {
	if alg != AlgorithmGBFS && alg != AlgorithmAStar {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, gridgraph.ErrEmptyGrid)
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := g.ValidateEndpoint(start); err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrInvalidEndpoint, err)
	}
	if err := g.ValidateEndpoint(goal); err != nil {
		return nil, fmt.Errorf("%w: goal: %w", ErrInvalidEndpoint, err)
	}

	r := newRunner(alg, g, start, goal, h, cfg)
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single search execution.
// Nothing in it is shared with other invocations.
type runner struct {
	alg      Algorithm
	grid     *gridgraph.Grid                               // read-only
	start    gridgraph.Coordinate                          // seed node
	goal     gridgraph.Coordinate                          // target node
	h        heuristic.Func                                // estimate to goal
	options  Options                                       // cap and hooks
	open     *frontier.Frontier                            // lazy-deletion min-heap
	prev     map[gridgraph.Coordinate]gridgraph.Coordinate // node → predecessor; start → start
	cost     map[gridgraph.Coordinate]int                  // A* only: best known g
	explored map[gridgraph.Coordinate]struct{}             // popped and expanded
	status   Status
}

func newRunner(alg Algorithm, g *gridgraph.Grid, start, goal gridgraph.Coordinate, h heuristic.Func, cfg Options) *runner {
	n := g.WalkableCount()
	r := &runner{
		alg:      alg,
		grid:     g,
		start:    start,
		goal:     goal,
		h:        h,
		options:  cfg,
		open:     frontier.New(n),
		prev:     make(map[gridgraph.Coordinate]gridgraph.Coordinate, n),
		explored: make(map[gridgraph.Coordinate]struct{}, n),
		status:   StatusInitialized,
	}
	if alg == AlgorithmAStar {
		r.cost = make(map[gridgraph.Coordinate]int, n)
	}

	return r
}

// init seeds the frontier and the predecessor map with the start node.
func (r *runner) init() {
	r.prev[r.start] = r.start
	if r.cost != nil {
		r.cost[r.start] = 0
	}
	r.push(r.start, 0)
}

// process is the main loop. It stops when the goal is popped, the frontier
// empties, or the expansion cap is reached.
func (r *runner) process() {
	r.status = StatusRunning
	for {
		e, ok := r.open.Pop()
		if !ok {
			r.status = StatusExhausted
			return
		}

		// Skip entries superseded by a cheaper push of the same node.
		if r.cost != nil && e.Cost > r.cost[e.Node] {
			continue
		}

		if e.Node == r.goal {
			r.status = StatusSucceeded
			return
		}

		if _, seen := r.explored[e.Node]; !seen {
			if r.options.MaxExplored > 0 && len(r.explored) >= r.options.MaxExplored {
				r.status = StatusExhausted
				return
			}
			r.explored[e.Node] = struct{}{}
			r.options.OnExpand(e.Node, len(r.explored))
		}

		r.expand(e)
	}
}

// expand pushes every neighbor of e.Node that the policy admits.
func (r *runner) expand(e frontier.Entry) {
	for _, v := range r.grid.Neighbors4(e.Node) {
		switch r.alg {
		case AlgorithmGBFS:
			if _, known := r.prev[v]; known {
				continue
			}
			r.prev[v] = e.Node
			r.push(v, 0)
		case AlgorithmAStar:
			g := e.Cost + 1
			if best, known := r.cost[v]; known && g >= best {
				continue
			}
			r.cost[v] = g
			r.prev[v] = e.Node
			r.push(v, g)
		}
	}
}

// push computes the policy key for node and adds it to the frontier.
func (r *runner) push(node gridgraph.Coordinate, g int) {
	est := r.h(node, r.goal)
	var key frontier.Key
	if r.alg == AlgorithmAStar {
		key = frontier.Key{float64(g) + est, float64(g)}
	} else {
		key = frontier.Key{est}
	}
	r.options.OnPush(r.open.Push(key, node, g))
}

// result packages the terminal state. Path is empty unless the goal was popped.
func (r *runner) result() *Result {
	res := &Result{
		Algorithm: r.alg,
		Explored:  len(r.explored),
		Pushed:    r.open.Pushed(),
		Status:    r.status,
		Path:      []gridgraph.Coordinate{},
	}
	if r.status == StatusSucceeded {
		res.Path = Reconstruct(r.prev, r.start, r.goal)
	}

	return res
}
