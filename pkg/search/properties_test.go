package search

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/pathfinder/pkg/grid"
)

// randomGrid builds a grid with scattered walls and free, distinct endpoints.
func randomGrid(t *testing.T, seed uint64) *grid.Grid {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, 99))
	g, err := grid.New(12+r.IntN(20), 8+r.IntN(15))
	if err != nil {
		t.Fatal(err)
	}
	src := grid.C(r.IntN(g.Width()), r.IntN(g.Height()))
	dst := src
	for dst == src {
		dst = grid.C(r.IntN(g.Width()), r.IntN(g.Height()))
	}
	_ = g.SetSource(src)
	_ = g.SetTarget(dst)
	if err := grid.ScatterWalls(g, 0.1+0.3*r.Float64(), seed); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestOptimality(t *testing.T) {
	for seed := range uint64(60) {
		g := randomGrid(t, seed)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			limit := g.Width()*g.Height() + 2

			ref := NewDijkstra(g)
			runToEnd(t, ref, limit)
			best, found := Solution(ref)

			for _, alg := range []Algorithm{
				NewAStar(g, Chebyshev),
				NewAStar(g, Euclidean),
				NewAStar(g, Manhattan),
				NewBidirectional(g),
			} {
				runToEnd(t, alg, limit)
				n, ok := Solution(alg)
				if ok != found {
					t.Fatalf("%s found=%v, Dijkstra found=%v", alg.Name(), ok, found)
				}
				if !ok {
					continue
				}
				checkPath(t, g, alg.Name(), n.Path(), n.Distance)

				switch a := alg.(type) {
				case *AStar:
					if a.Heuristic().Name() == Manhattan.Name() {
						// Inadmissible on diagonal moves: never cheaper, may be dearer.
						if n.Distance < best.Distance-epsilon {
							t.Errorf("%s cost %v beats Dijkstra %v", alg.Name(), n.Distance, best.Distance)
						}
						continue
					}
					if !approx(n.Distance, best.Distance) {
						t.Errorf("%s cost %v, Dijkstra %v", alg.Name(), n.Distance, best.Distance)
					}
				case *Bidirectional:
					if n.Distance < best.Distance-epsilon {
						t.Errorf("%s cost %v beats Dijkstra %v", alg.Name(), n.Distance, best.Distance)
					}
				}
			}
			if found {
				checkPath(t, g, ref.Name(), best.Path(), best.Distance)
			}
		})
	}
}

func TestTermination(t *testing.T) {
	for seed := range uint64(20) {
		g := randomGrid(t, 1000+seed)
		cells := g.Width() * g.Height()
		for _, alg := range allAlgorithms(g) {
			// Each step closes at least one cell per side or ends the search.
			runToEnd(t, alg, cells+1)
		}
	}
}

type snapshot struct {
	parent   *Node
	distance float64
}

func TestClosedSetMonotonic(t *testing.T) {
	for seed := range uint64(10) {
		g := randomGrid(t, 2000+seed)
		for _, alg := range allAlgorithms(g) {
			if err := alg.Init(); err != nil {
				t.Fatal(err)
			}
			closed := map[*Node]snapshot{}
			for done := false; !done; {
				var err error
				if done, err = alg.Step(); err != nil {
					t.Fatal(err)
				}
				open := map[*Node]bool{}
				for _, n := range alg.Unvisited() {
					open[n] = true
				}
				for n, was := range closed {
					if open[n] {
						t.Fatalf("%s: closed node %v reopened", alg.Name(), n.Coord)
					}
					if n.Parent != was.parent || n.Distance != was.distance {
						t.Fatalf("%s: closed node %v changed", alg.Name(), n.Coord)
					}
				}
				for _, n := range alg.Visited() {
					if _, ok := closed[n]; !ok {
						closed[n] = snapshot{n.Parent, n.Distance}
					}
				}
			}
		}
	}
}

func TestSetsAreDisjoint(t *testing.T) {
	g := randomGrid(t, 7)
	for _, alg := range []Algorithm{NewDijkstra(g), NewAStar(g, Euclidean)} {
		_ = alg.Init()
		for done := false; !done; {
			done, _ = alg.Step()
			seen := map[grid.Coord]bool{}
			for _, n := range append(alg.Unvisited(), alg.Visited()...) {
				if seen[n.Coord] {
					t.Fatalf("%s: %v is both open and closed", alg.Name(), n.Coord)
				}
				seen[n.Coord] = true
			}
		}
	}
}
