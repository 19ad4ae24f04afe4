// Package frontier implements the min-priority open list used by the
// best-first searches in package search.
//
// Entries are ordered lexicographically by (Key, Seq). Key is a short tuple of
// priorities, e.g. (h) for greedy search or (g+h, g) for A*. Seq is assigned
// from a counter owned by the Frontier at push time and only decides between
// entries whose keys are exactly equal, so pop order is deterministic and
// coordinates are never compared.
//
// Duplicate nodes are allowed. Superseded entries are never removed in place;
// the caller recognizes and skips them when popped ("lazy deletion").
//
// Complexity:
//
//   - Push, Pop: O(log N) where N is the number of live entries.
//   - Space:     O(N).
package frontier

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Key is a priority tuple compared lexicographically. When one key is a
// prefix of the other, the shorter one sorts first.
type Key []float64

// Less reports whether k orders strictly before o.
func (k Key) Less(o Key) bool {
	n := min(len(k), len(o))
	for i := 0; i < n; i++ {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}

	return len(k) < len(o)
}

// Equal reports whether k and o hold the same values.
func (k Key) Equal(o Key) bool {
	return !k.Less(o) && !o.Less(k)
}

// Entry is one candidate in the frontier.
type Entry struct {
	Key  Key                  // priority tuple
	Seq  uint64               // insertion sequence, strictly increasing per Frontier
	Node gridgraph.Coordinate // candidate cell
	Cost int                  // accumulated step cost when pushed (0 if unused)
}

// before reports whether e pops ahead of o.
func (e *Entry) before(o *Entry) bool {
	if e.Key.Less(o.Key) {
		return true
	}
	if o.Key.Less(e.Key) {
		return false
	}

	return e.Seq < o.Seq
}

// Frontier is a min-priority queue of Entry values.
// It is not safe for concurrent use; each search owns its own Frontier.
type Frontier struct {
	h   entryHeap
	seq uint64
}

// New returns an empty Frontier with room for capacity entries.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{h: make(entryHeap, 0, capacity)}
}

// Push inserts node with the given key and cost and returns the stored entry,
// including its assigned sequence number.
func (f *Frontier) Push(key Key, node gridgraph.Coordinate, cost int) Entry {
	e := &Entry{Key: key, Seq: f.seq, Node: node, Cost: cost}
	f.seq++
	heap.Push(&f.h, e)

	return *e
}

// Pop removes and returns the entry with the smallest (Key, Seq).
// ok is false when the frontier is empty.
func (f *Frontier) Pop() (e Entry, ok bool) {
	if len(f.h) == 0 {
		return Entry{}, false
	}

	return *heap.Pop(&f.h).(*Entry), true
}

// Peek returns the next entry without removing it.
func (f *Frontier) Peek() (e Entry, ok bool) {
	if len(f.h) == 0 {
		return Entry{}, false
	}

	return *f.h[0], true
}

// Len returns the number of entries, stale duplicates included.
func (f *Frontier) Len() int { return len(f.h) }

// IsEmpty reports whether no entries remain.
func (f *Frontier) IsEmpty() bool { return len(f.h) == 0 }

// Pushed returns the total number of pushes so far.
func (f *Frontier) Pushed() uint64 { return f.seq }

// entryHeap is a min-heap of *Entry ordered by (Key, Seq).
type entryHeap []*Entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less orders by key tuple, then by insertion sequence.
func (h entryHeap) Less(i, j int) bool { return h[i].before(h[j]) }

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *Entry.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(*Entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *Entry.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
