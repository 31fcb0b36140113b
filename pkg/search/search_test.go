package search

import (
	"slices"
	"testing"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

func TestScenarios(t *testing.T) {
	tests := []struct {
		name    string
		m       string
		cost    float64
		nodes   int
		through grid.Coord
	}{
		{
			name: "empty 3x3 takes two diagonals",
			m: `
S..
...
..T`,
			cost:    2 * DiagonalCost,
			nodes:   3,
			through: grid.C(1, 1),
		},
		{
			name:    "single row",
			m:       `S...T`,
			cost:    4.0,
			nodes:   5,
			through: grid.C(2, 0),
		},
		{
			name: "wall column with opening at the top",
			m: `
S...T
..#..
..#..`,
			cost:    4.0,
			nodes:   5,
			through: grid.C(2, 0),
		},
	}

	for _, tt := range tests {
		g := parse(t, tt.m)
		for _, alg := range allAlgorithms(g) {
			t.Run(tt.name+"/"+alg.Name(), func(t *testing.T) {
				runToEnd(t, alg, 100)
				n, ok := Solution(alg)
				if !ok {
					t.Fatal("no path found")
				}
				checkPath(t, g, alg.Name(), n.Path(), n.Distance)
				if _, bidi := alg.(*Bidirectional); bidi {
					return // finds a path, not necessarily the cheapest
				}
				if !approx(n.Distance, tt.cost) {
					t.Errorf("cost = %v, want %v", n.Distance, tt.cost)
				}
				path := n.Path()
				if len(path) != tt.nodes {
					t.Errorf("path %v has %d nodes, want %d", path, len(path), tt.nodes)
				}
				if !slices.Contains(path, tt.through) {
					t.Errorf("path %v does not pass %v", path, tt.through)
				}
			})
		}
	}
}

func TestTargetWalledIn(t *testing.T) {
	m := `
S....
.....
.....
...##
...#T`

	for _, alg := range allAlgorithms(parse(t, m)) {
		t.Run(alg.Name(), func(t *testing.T) {
			runToEnd(t, alg, 100)
			if alg.State() != Done {
				t.Errorf("State() = %v, want done", alg.State())
			}
			if _, ok := Solution(alg); ok {
				t.Error("found a path to an enclosed target")
			}
			if len(alg.BestPaths()) != 0 {
				t.Errorf("BestPaths() = %v after exhaustion", alg.BestPaths())
			}
			if _, bidi := alg.(*Bidirectional); bidi {
				return // the target seeds the reverse search
			}
			for _, n := range alg.Visited() {
				if n.Coord == grid.C(4, 4) {
					t.Error("target entered the visited set")
				}
			}
		})
	}
}

func TestTargetNotClosed(t *testing.T) {
	g := parse(t, `S.T`)
	alg := NewDijkstra(g)
	runToEnd(t, alg, 10)
	for _, n := range alg.Visited() {
		if n.Coord == g.Target() {
			t.Error("target was moved to visited")
		}
	}
	if got := len(alg.Visited()); got != 2 {
		t.Errorf("visited %d nodes, want 2", got)
	}
}

func TestStateMachine(t *testing.T) {
	for _, alg := range allAlgorithms(parse(t, "S..\n...\n..T")) {
		t.Run(alg.Name(), func(t *testing.T) {
			if alg.State() != Idle {
				t.Fatalf("new algorithm in %v", alg.State())
			}

			done, err := alg.Step()
			if !errors.Is(err, errors.ErrCodeInvalidState) || done {
				t.Errorf("Step while idle = %v, %v; want INVALID_STATE", done, err)
			}
			if alg.State() != Idle || len(alg.Unvisited()) != 0 {
				t.Error("failed Step mutated the algorithm")
			}

			if err := alg.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			if alg.State() != Initialized {
				t.Errorf("State() after Init = %v", alg.State())
			}
			open := len(alg.Unvisited())
			if err := alg.Init(); !errors.Is(err, errors.ErrCodeInvalidState) {
				t.Errorf("second Init error = %v, want INVALID_STATE", err)
			}
			if len(alg.Unvisited()) != open {
				t.Error("failed Init reseeded the frontier")
			}

			if _, err := alg.Step(); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if s := alg.State(); s != Stepping && s != Done {
				t.Errorf("State() after Step = %v", s)
			}

			for alg.State() != Done {
				if _, err := alg.Step(); err != nil {
					t.Fatalf("Step: %v", err)
				}
			}
			visited := len(alg.Visited())
			paths := alg.BestPaths()
			done, err = alg.Step()
			if !done || err != nil {
				t.Errorf("Step after done = %v, %v; want true, nil", done, err)
			}
			if len(alg.Visited()) != visited || !slices.Equal(alg.BestPaths(), paths) {
				t.Error("Step after done mutated the algorithm")
			}

			alg.Reset()
			if alg.State() != Idle || len(alg.Visited()) != 0 || len(alg.Unvisited()) != 0 || len(alg.BestPaths()) != 0 {
				t.Error("Reset left state behind")
			}
			runToEnd(t, alg, 100)
			if _, ok := Solution(alg); !ok {
				t.Error("no path after Reset and rerun")
			}
		})
	}
}

func TestResetWhileStepping(t *testing.T) {
	g := grid.Default()
	_ = g.SetTarget(grid.C(40, 20))
	alg := NewAStar(g, Euclidean)
	_ = alg.Init()
	for range 5 {
		_, _ = alg.Step()
	}
	alg.Reset()
	if alg.State() != Idle || len(alg.Unvisited()) != 0 {
		t.Error("Reset mid-search left state behind")
	}
	if err := g.AddWall(grid.C(10, 10)); err != nil {
		t.Errorf("grid edit after Reset: %v", err)
	}
}

func TestBidirectionalSplice(t *testing.T) {
	// Source side: (0,0) -> (1,0) -> (2,0); target side: (4,0) -> (3,0) -> (2,0).
	s0 := NewNode(grid.C(0, 0))
	s1 := &Node{Coord: grid.C(1, 0), Parent: s0, Distance: 1}
	s2 := &Node{Coord: grid.C(2, 0), Parent: s1, Distance: 2}
	t0 := NewNode(grid.C(4, 0))
	t1 := &Node{Coord: grid.C(3, 0), Parent: t0, Distance: 1}
	t2 := &Node{Coord: grid.C(2, 0), Parent: t1, Distance: 2}

	head := splice(s2, t2)

	want := []grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0), grid.C(3, 0), grid.C(4, 0)}
	if got := head.Path(); !slices.Equal(got, want) {
		t.Errorf("spliced path = %v, want %v", got, want)
	}
	for i, n := range head.Chain() {
		if want := float64(4 - i); n.Distance != want {
			t.Errorf("node %v distance = %v, want %v", n.Coord, n.Distance, want)
		}
	}
	if s2.Parent != s1 || t2.Parent != t1 || t1.Parent != t0 || s0.Parent != nil {
		t.Error("splice modified an input chain")
	}
}

func TestBidirectionalMeeting(t *testing.T) {
	g := parse(t, `
S.......
.######.
.#....#.
.#.##.#.
...#T...`)
	alg := NewBidirectional(g)
	runToEnd(t, alg, 200)

	n, ok := Solution(alg)
	if !ok {
		t.Fatal("no path found")
	}
	checkPath(t, g, alg.Name(), n.Path(), n.Distance)

	// Explored chains still lead to their own origin.
	for _, v := range alg.Visited() {
		chain := v.Chain()
		end := chain[len(chain)-1].Coord
		if end != g.Source() && end != g.Target() {
			t.Errorf("visited %v chains back to %v", v.Coord, end)
		}
	}
}

func TestBidirectionalFronts(t *testing.T) {
	g := grid.Default()
	_ = g.SetSource(grid.C(0, 0))
	_ = g.SetTarget(grid.C(40, 20))
	alg := NewBidirectional(g)
	_ = alg.Init()
	if _, err := alg.Step(); err != nil {
		t.Fatal(err)
	}
	paths := alg.BestPaths()
	if len(paths) != 2 || paths[0].Coord != g.Source() || paths[1].Coord != g.Target() {
		t.Errorf("BestPaths() after one step = %v, want source and target fronts", paths)
	}
}
