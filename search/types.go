// Package search defines result types, configuration options and sentinel
// errors for the best-first grid searches.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilHeuristic indicates that a nil heuristic.Func was passed.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrInvalidGrid indicates a grid with no rows or no columns.
	// It wraps the underlying gridgraph error.
	ErrInvalidGrid = errors.New("search: invalid grid")

	// ErrInvalidEndpoint indicates a start or goal that is out of bounds or on
	// a wall. It wraps gridgraph.ErrOutOfBounds or gridgraph.ErrWallEndpoint.
	ErrInvalidEndpoint = errors.New("search: invalid endpoint")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name or value.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrCorruptPredecessors indicates a predecessor map that does not lead
	// back to the start node (a cycle or a dangling link).
	ErrCorruptPredecessors = errors.New("search: corrupt predecessor map")
)

// Algorithm selects the frontier ordering policy.
type Algorithm int

const (
	// AlgorithmGBFS orders purely by heuristic estimate and never revisits a
	// node once it has a predecessor.
	AlgorithmGBFS Algorithm = iota
	// AlgorithmAStar orders by (g+h, g) and relaxes predecessors when a
	// cheaper path is found.
	AlgorithmAStar
)

// Algorithms lists every algorithm in reporting order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmGBFS, AlgorithmAStar}
}

// String returns "GBFS" or "A*".
func (a Algorithm) String() string {
	switch a {
	case AlgorithmGBFS:
		return "GBFS"
	case AlgorithmAStar:
		return "A*"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm resolves "gbfs"/"greedy" and "astar"/"a*", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gbfs", "greedy":
		return AlgorithmGBFS, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Status is the state of a single search invocation:
// Initialized → Running → {Succeeded, Exhausted}.
type Status int

const (
	// StatusInitialized: frontier seeded, nothing popped yet.
	StatusInitialized Status = iota
	// StatusRunning: the main loop is popping and expanding.
	StatusRunning
	// StatusSucceeded: the goal was popped.
	StatusSucceeded
	// StatusExhausted: the frontier emptied or the expansion cap was hit.
	StatusExhausted
)

// String returns the lower-case state name.
func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds the outcome of one search:
//   - Path: start→goal inclusive, empty when the goal was not reached.
//   - Explored: distinct nodes popped and expanded (the goal is not counted).
//   - Pushed: total frontier pushes, stale duplicates included.
//   - Status: StatusSucceeded or StatusExhausted.
type Result struct {
	Algorithm Algorithm
	Path      []gridgraph.Coordinate
	Explored  int
	Pushed    uint64
	Status    Status
}

// Found reports whether a path to the goal was returned.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Steps returns the number of moves on the path, or 0 when none was found.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds limits and observation hooks for a search.
type Options struct {
	// MaxExplored, if > 0, ends the search as StatusExhausted with an empty
	// path once this many nodes have been expanded. 0 disables the cap.
	MaxExplored int

	// OnExpand is called after a node is marked explored, with the running
	// explored count.
	OnExpand func(node gridgraph.Coordinate, explored int)

	// OnPush is called for every frontier push, the seed entry included.
	OnPush func(e frontier.Entry)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no expansion cap and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxExplored: 0,
		OnExpand:    func(gridgraph.Coordinate, int) {},
		OnPush:      func(frontier.Entry) {},
	}
}

// WithMaxExplored caps the number of expanded nodes.
//
//	n > 0: stop after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExplored(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExplored cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExplored = n
	}
}

// WithOnExpand registers a callback run after each expansion.
// Under Compare it is called from several goroutines at once.
func WithOnExpand(fn func(node gridgraph.Coordinate, explored int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run for every frontier push.
// Under Compare it is called from several goroutines at once.
func WithOnPush(fn func(e frontier.Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}
