// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// mustInts builds a Grid from the 0/1 encoding or fails the test.
func mustInts(t *testing.T, values [][]int) *Grid {
	t.Helper()
	g, err := FromInts(values)
	if err != nil {
		t.Fatalf("FromInts failed: %v", err)
	}

	return g
}

// TestConnectedComponents_Simple tests ConnectedComponents on a 3×4 grid.
//
// Grid (0 = free, 1 = wall):
//
//	1 0 0 1
//	0 0 1 1
//	1 1 0 0
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple(t *testing.T) {
	g := mustInts(t, [][]int{
		{1, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
	})

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoDiagonals makes sure corner-touching cells stay
// in separate components under 4-connectivity.
//
//	0 1 0
//	1 0 1
//	0 1 0
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g := mustInts(t, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})

	comps := g.ConnectedComponents()
	if len(comps) != 5 {
		t.Fatalf("got %d components; want 5", len(comps))
	}
	for i, comp := range comps {
		if len(comp) != 1 {
			t.Errorf("component %d size = %d; want 1", i, len(comp))
		}
	}
}

// TestConnectedComponents_AllWalls tests edge cases:
//   - all walls → zero components
//   - single free cell → one component of size 1
func TestConnectedComponents_AllWalls(t *testing.T) {
	g1 := mustInts(t, [][]int{{1, 1}, {1, 1}})
	if comps := g1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all walls: got %d components; want 0", len(comps))
	}

	g2 := mustInts(t, [][]int{{1, 0}})
	comps := g2.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Fatalf("single free cell: got %v; want one component of size 1", comps)
	}
	if comps[0][0] != (Coordinate{Row: 0, Col: 1}) {
		t.Errorf("single free cell at %v; want (0,1)", comps[0][0])
	}
}

// TestComponentOf checks reachability from a given cell and the BFS order
// produced by the canonical neighbor order.
func TestComponentOf(t *testing.T) {
	g := mustInts(t, [][]int{
		{0, 0, 1},
		{0, 1, 0},
	})

	got := g.ComponentOf(Coordinate{0, 0})
	want := []Coordinate{{0, 0}, {1, 0}, {0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComponentOf((0,0)) = %v; want %v", got, want)
	}
	if got := g.ComponentOf(Coordinate{1, 2}); len(got) != 1 {
		t.Errorf("isolated cell component = %v; want size 1", got)
	}
	if got := g.ComponentOf(Coordinate{0, 2}); got != nil {
		t.Errorf("wall component = %v; want nil", got)
	}
	if got := g.ComponentOf(Coordinate{9, 9}); got != nil {
		t.Errorf("out-of-bounds component = %v; want nil", got)
	}
}

// TestShortestSteps verifies the BFS oracle on the 5×5 demo map and on
// unreachable and degenerate inputs.
func TestShortestSteps(t *testing.T) {
	g := mustInts(t, [][]int{
		{0, 0, 0, 0, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 0, 1, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0},
	})

	cases := []struct {
		name        string
		start, goal Coordinate
		steps       int
		ok          bool
	}{
		{"DemoCorners", Coordinate{0, 0}, Coordinate{4, 4}, 8, true},
		{"SameCell", Coordinate{2, 2}, Coordinate{2, 2}, 0, true},
		{"AroundWall", Coordinate{2, 0}, Coordinate{0, 0}, 6, true},
		{"WallGoal", Coordinate{0, 0}, Coordinate{1, 1}, 0, false},
		{"OutOfBounds", Coordinate{-1, 0}, Coordinate{0, 0}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			steps, ok := g.ShortestSteps(tc.start, tc.goal)
			if steps != tc.steps || ok != tc.ok {
				t.Errorf("ShortestSteps(%v,%v) = (%d,%t); want (%d,%t)",
					tc.start, tc.goal, steps, ok, tc.steps, tc.ok)
			}
		})
	}

	split := mustInts(t, [][]int{{0, 1, 0}})
	if _, ok := split.ShortestSteps(Coordinate{0, 0}, Coordinate{0, 2}); ok {
		t.Error("disconnected cells reported reachable")
	}
}
