package search

import (
	"sync"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Outcome is one cell of a Compare run: a single algorithm paired with a
// single named heuristic.
type Outcome struct {
	Algorithm Algorithm
	Heuristic string
	Result    *Result
}

// Compare runs every algorithm in algs with every heuristic in names over the
// same grid, one goroutine per pair. The grid is only read; each run owns its
// frontier and maps, so no further synchronization is needed.
//
// Outcomes are returned in algorithm-major, heuristic-minor order regardless
// of completion order. Empty algs defaults to Algorithms(); empty names
// defaults to heuristic.Names(). Unknown names fail before any search starts.
// If any run fails, the error of the first failing pair in output order is
// returned.
//
// opts are shared by every run, so OnExpand and OnPush hooks must be safe for
// concurrent use.
func Compare(g *gridgraph.Grid, start, goal gridgraph.Coordinate, algs []Algorithm, names []string, opts ...Option) ([]Outcome, error) {
	if len(algs) == 0 {
		algs = Algorithms()
	}
	if len(names) == 0 {
		names = heuristic.Names()
	}
	fns := make([]heuristic.Func, len(names))
	for i, name := range names {
		fn, err := heuristic.ByName(name)
		if err != nil {
			return nil, err
		}
		fns[i] = fn
	}

	out := make([]Outcome, len(algs)*len(names))
	errs := make([]error, len(out))
	var wg sync.WaitGroup
	wg.Add(len(out))
	for ai, alg := range algs {
		for hi, name := range names {
			i := ai*len(names) + hi
			out[i] = Outcome{Algorithm: alg, Heuristic: name}
			go func(i int, alg Algorithm, h heuristic.Func) {
				defer wg.Done()
				out[i].Result, errs[i] = Run(alg, g, start, goal, h, opts...)
			}(i, alg, fns[hi])
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
