// Command gridpath loads a text grid map, runs greedy best-first search and
// A* with every requested heuristic, and prints path length and nodes
// explored for each run.
//
// Usage:
//
//	gridpath [-map FILE] [-alg gbfs|astar|all] [-heuristic NAME|all]
//	         [-max-explored N] [-render]
//
// Map format: one row per line; '.' or '0' free, '#' or '1' wall, 'S' start,
// 'G' goal. Spaces are ignored, blank lines and "//" lines are skipped.
// Without -map the built-in 5×5 demo map is used.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/search"
)

// demoMap is used when no -map is given.
const demoMap = `
S 0 0 0 0
1 1 0 1 0
0 0 0 1 0
0 1 0 0 0
0 0 0 1 G
`

// config holds parsed command-line flags.
type config struct {
	mapPath     string
	alg         string
	heuristic   string
	maxExplored int
	render      bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridpath: ")

	var cfg config
	flag.StringVar(&cfg.mapPath, "map", "", "path to a text map (default: built-in demo)")
	flag.StringVar(&cfg.alg, "alg", "all", "algorithm: gbfs, astar or all")
	flag.StringVar(&cfg.heuristic, "heuristic", "all", "heuristic: manhattan, euclidean, diagonal or all")
	flag.IntVar(&cfg.maxExplored, "max-explored", 0, "stop a search after N expansions (0 = no limit)")
	flag.BoolVar(&cfg.render, "render", false, "print each path over the map")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run loads the map, executes the requested searches and writes the report.
func run(cfg config, w io.Writer) error {
	g, start, goal, err := loadMap(cfg.mapPath)
	if err != nil {
		return err
	}
	algs, err := selectAlgorithms(cfg.alg)
	if err != nil {
		return err
	}
	names, err := selectHeuristics(cfg.heuristic)
	if err != nil {
		return err
	}

	out, err := search.Compare(g, start, goal, algs, names, search.WithMaxExplored(cfg.maxExplored))
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintf(w, "\n%s Heuristic\n", titleCase(name))
		for _, o := range out {
			if o.Heuristic != name {
				continue
			}
			fmt.Fprintf(w, "%-4s -> Path length: %d Nodes explored: %d\n",
				o.Algorithm, len(o.Result.Path), o.Result.Explored)
			if cfg.render {
				for _, line := range renderOverlay(g, o.Result.Path, start, goal) {
					fmt.Fprintf(w, "    %s\n", line)
				}
			}
		}
	}

	return nil
}

// loadMap reads path, or the demo map when path is empty.
func loadMap(path string) (*gridgraph.Grid, gridgraph.Coordinate, gridgraph.Coordinate, error) {
	if path == "" {
		return gridgraph.ReadMarkers(strings.NewReader(demoMap))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, gridgraph.Coordinate{}, gridgraph.Coordinate{}, err
	}
	defer f.Close()

	return gridgraph.ReadMarkers(f)
}

// selectAlgorithms maps the -alg flag to algorithms.
func selectAlgorithms(s string) ([]search.Algorithm, error) {
	if strings.EqualFold(s, "all") {
		return search.Algorithms(), nil
	}
	a, err := search.ParseAlgorithm(s)
	if err != nil {
		return nil, err
	}

	return []search.Algorithm{a}, nil
}

// selectHeuristics maps the -heuristic flag to canonical names.
func selectHeuristics(s string) ([]string, error) {
	if strings.EqualFold(s, "all") {
		return heuristic.Names(), nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	if _, err := heuristic.ByName(name); err != nil {
		return nil, err
	}

	return []string{name}, nil
}

// renderOverlay draws the map with the path marked '*', start 'S' and goal 'G'.
func renderOverlay(g *gridgraph.Grid, path []gridgraph.Coordinate, start, goal gridgraph.Coordinate) []string {
	rows := g.Strings()
	canvas := make([][]byte, len(rows))
	for r, row := range rows {
		canvas[r] = []byte(row)
	}
	for _, c := range path {
		canvas[c.Row][c.Col] = '*'
	}
	canvas[start.Row][start.Col] = 'S'
	canvas[goal.Row][goal.Col] = 'G'

	out := make([]string, len(canvas))
	for r, row := range canvas {
		out[r] = string(row)
	}

	return out
}

// titleCase upper-cases the first letter of an ASCII name.
func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
