package gridgraph

// ConnectedComponents finds all contiguous regions of Free cells under
// 4-connectivity. Components are discovered in row-major order of their
// first cell; cells inside a component appear in BFS order from that cell.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coordinate {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Coordinate

	for i, s := range g.cells {
		if s == Wall || seen[i] {
			continue
		}
		comps = append(comps, g.flood(g.coordinate(i), seen))
	}

	return comps
}

// ComponentOf returns the Free cells reachable from c, c included, in BFS
// order. It returns nil when c is not walkable.
func (g *Grid) ComponentOf(c Coordinate) []Coordinate {
	if !g.IsWalkable(c) {
		return nil
	}

	return g.flood(c, make([]bool, g.rows*g.cols))
}

// flood collects the component containing from, marking cells in seen.
func (g *Grid) flood(from Coordinate, seen []bool) []Coordinate {
	queue := []Coordinate{from}
	seen[g.index(from)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors4(queue[qi]) {
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// ShortestSteps runs an exhaustive breadth-first search from start and
// returns the number of unit steps on a shortest path to goal.
// ok is false when either endpoint is not walkable or goal is unreachable.
//
// It is the reference oracle the heuristic searches are checked against.
// Time: O(R·C·4), Memory: O(R·C).
func (g *Grid) ShortestSteps(start, goal Coordinate) (steps int, ok bool) {
	if !g.IsWalkable(start) || !g.IsWalkable(goal) {
		return 0, false
	}
	dist := make([]int, g.rows*g.cols)
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(start)] = 0
	queue := []Coordinate{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := dist[g.index(u)]
		if u == goal {
			return du, true
		}
		for _, v := range g.Neighbors4(u) {
			vi := g.index(v)
			if dist[vi] < 0 {
				dist[vi] = du + 1
				queue = append(queue, v)
			}
		}
	}

	return 0, false
}
