// Package gridpath is a small pathfinding toolkit for 4-connected occupancy
// grids with uniform step cost.
//
// What is inside?
//
//	heuristic/ - distance estimates between two cells: Manhattan, Euclidean, Diagonal
//	gridgraph/ - immutable Free/Wall grid, fixed-order neighbor expansion,
//	             text maps with S/G markers, components and a BFS oracle
//	frontier/  - min-priority frontier ordered by (key tuple, insertion sequence)
//	search/    - Greedy Best-First Search and A*, path reconstruction and a
//	             concurrent comparison runner over algorithms × heuristics
//	cmd/gridpath - command-line front end: load a map, run, report, overlay
//
// Every search invocation owns its frontier, predecessor and cost maps, so any
// number of searches may run concurrently over the same *gridgraph.Grid.
//
// Quick ASCII example (S = start, G = goal, # = wall):
//
//	S . . . .
//	# # . # .
//	. . . # .
//	. # . . .
//	. . . # G
//
// A* with the Manhattan heuristic returns the 9-cell shortest path along the
// top row and down the right column.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
