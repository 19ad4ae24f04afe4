package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid builds an n×n grid with roughly 25% walls from a fixed seed.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			if r.Intn(4) == 0 {
				values[y][x] = 1
			}
		}
	}
	g, err := gridgraph.FromInts(values)
	if err != nil {
		b.Fatalf("setup FromInts failed: %v", err)
	}

	return g
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 500×500 grid.
// Complexity: O(R×C×4)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkShortestSteps measures the BFS oracle corner to corner on an open 500×500 grid.
func BenchmarkShortestSteps(b *testing.B) {
	values := make([][]int, 500)
	for y := range values {
		values[y] = make([]int, 500)
	}
	g, err := gridgraph.FromInts(values)
	if err != nil {
		b.Fatalf("setup FromInts failed: %v", err)
	}
	start, goal := gridgraph.At(0, 0), gridgraph.At(499, 499)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ShortestSteps(start, goal)
	}
}
