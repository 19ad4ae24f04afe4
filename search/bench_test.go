package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/search"
)

// benchGrid builds an n×n grid with ~20% walls from a fixed seed and frees
// the two corners used as endpoints.
func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			if r.Intn(5) == 0 {
				values[y][x] = 1
			}
		}
	}
	values[0][0], values[n-1][n-1] = 0, 0
	g, err := gridgraph.FromInts(values)
	if err != nil {
		b.Fatalf("setup FromInts failed: %v", err)
	}

	return g
}

// BenchmarkAStar measures A* with Manhattan corner to corner on 200×200.
// Complexity: O(N log N)
func BenchmarkAStar(b *testing.B) {
	g := benchGrid(b, 200)
	start, goal := gridgraph.At(0, 0), gridgraph.At(199, 199)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar(g, start, goal, heuristic.Manhattan)
	}
}

// BenchmarkGBFS measures greedy search on the same grid.
func BenchmarkGBFS(b *testing.B) {
	g := benchGrid(b, 200)
	start, goal := gridgraph.At(0, 0), gridgraph.At(199, 199)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.GBFS(g, start, goal, heuristic.Manhattan)
	}
}

// BenchmarkCompare measures all six algorithm × heuristic runs in parallel.
func BenchmarkCompare(b *testing.B) {
	g := benchGrid(b, 200)
	start, goal := gridgraph.At(0, 0), gridgraph.At(199, 199)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Compare(g, start, goal, nil, nil)
	}
}
