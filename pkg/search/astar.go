package search

import (
	"math"

	"github.com/matzehuels/pathfinder/pkg/grid"
)

// Heuristic estimates the remaining distance between two cells.
type Heuristic interface {
	Name() string
	Estimate(from, to grid.Coord) float64
}

type heuristic struct {
	name     string
	estimate func(dx, dy float64) float64
}

func (h heuristic) Name() string { return h.name }

func (h heuristic) Estimate(from, to grid.Coord) float64 {
	dx, dy := from.Delta(to)
	return h.estimate(float64(dx), float64(dy))
}

// Built-in heuristics, all on the absolute axis deltas dx and dy.
var (
	// Manhattan is dx + dy. It overestimates diagonal moves, so A* with it
	// is fast but not guaranteed to find the cheapest path.
	Manhattan Heuristic = heuristic{"Manhattan Distance", func(dx, dy float64) float64 {
		return dx + dy
	}}

	// Chebyshev is max(dx, dy).
	Chebyshev Heuristic = heuristic{"Chebyshev Distance", func(dx, dy float64) float64 {
		return math.Max(dx, dy)
	}}

	// Euclidean is the straight-line distance.
	Euclidean Heuristic = heuristic{"Euclidean Distance", func(dx, dy float64) float64 {
		return math.Sqrt(dx*dx + dy*dy)
	}}
)

// AStar is best-first search ordered by Cost, the distance from the source
// plus the heuristic estimate to the target.
type AStar struct {
	single
	heuristic Heuristic
}

// NewAStar returns an idle A* search over g guided by h.
func NewAStar(g *grid.Grid, h Heuristic) *AStar {
	a := &AStar{heuristic: h}
	a.single = newSingle("A-Star ("+h.Name()+")", g, ByCost, func(n *Node) {
		n.Cost = n.Distance + h.Estimate(n.Coord, g.Target())
	})
	return a
}

// Heuristic returns the estimate guiding the search.
func (a *AStar) Heuristic() Heuristic { return a.heuristic }
