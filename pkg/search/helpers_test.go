package search

import (
	"math"
	"testing"

	"github.com/matzehuels/pathfinder/pkg/grid"
)

const epsilon = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

func parse(t *testing.T, m string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseASCII(m)
	if err != nil {
		t.Fatalf("ParseASCII: %v", err)
	}
	return g
}

// allAlgorithms returns a fresh instance of every built-in algorithm.
func allAlgorithms(g *grid.Grid) []Algorithm {
	var out []Algorithm
	for _, e := range DefaultRegistry(g).Entries() {
		out = append(out, e.Algorithm)
	}
	return out
}

// runToEnd steps alg to completion, failing after limit steps.
func runToEnd(t *testing.T, alg Algorithm, limit int) int {
	t.Helper()
	if err := alg.Init(); err != nil {
		t.Fatalf("%s: Init: %v", alg.Name(), err)
	}
	for steps := 1; steps <= limit; steps++ {
		done, err := alg.Step()
		if err != nil {
			t.Fatalf("%s: Step %d: %v", alg.Name(), steps, err)
		}
		if done {
			return steps
		}
	}
	t.Fatalf("%s: not done after %d steps", alg.Name(), limit)
	return 0
}

// checkPath verifies that path walks legal moves from source to target and
// that cost matches its step costs.
func checkPath(t *testing.T, g *grid.Grid, name string, path []grid.Coord, cost float64) {
	t.Helper()
	if len(path) == 0 {
		t.Fatalf("%s: empty path", name)
	}
	if path[0] != g.Source() || path[len(path)-1] != g.Target() {
		t.Fatalf("%s: path runs %v -> %v, want %v -> %v", name, path[0], path[len(path)-1], g.Source(), g.Target())
	}
	seen := map[grid.Coord]bool{}
	for i, c := range path {
		if seen[c] {
			t.Fatalf("%s: path visits %v twice: %v", name, c, path)
		}
		seen[c] = true
		if i == 0 {
			continue
		}
		legal := false
		for _, n := range g.Traversable(path[i-1]) {
			if n == c {
				legal = true
				break
			}
		}
		if !legal {
			t.Fatalf("%s: illegal move %v -> %v", name, path[i-1], c)
		}
	}
	if !approx(PathCost(path), cost) {
		t.Errorf("%s: reported cost %v, path sums to %v", name, cost, PathCost(path))
	}
}
