package search

import (
	"cmp"

	"github.com/matzehuels/pathfinder/pkg/grid"
)

// Edge costs.
const (
	OrthogonalCost = 1.0
	DiagonalCost   = 1.414213562373
)

// Node is one explored cell. Parent links lead back to the cell the search
// started from; Distance is the length of that chain. Cost is the frontier
// key: Distance plus the heuristic estimate for A*, Distance otherwise.
type Node struct {
	grid.Coord
	Parent   *Node
	Distance float64
	Cost     float64
}

// NewNode returns an unlinked node at c with zero distance.
func NewNode(c grid.Coord) *Node {
	return &Node{Coord: c}
}

// StepCost returns the cost of moving between two adjacent cells.
func StepCost(from, to grid.Coord) float64 {
	if from.IsDiagonal(to) {
		return DiagonalCost
	}
	return OrthogonalCost
}

// Chain returns n followed by its ancestors, ending at the origin. A parent
// cycle ends the chain at the first repeated node.
func (n *Node) Chain() []*Node {
	var chain []*Node
	seen := make(map[*Node]bool)
	for cur := n; cur != nil && !seen[cur]; cur = cur.Parent {
		seen[cur] = true
		chain = append(chain, cur)
	}
	return chain
}

// Path returns the coordinates from the origin to n.
func (n *Node) Path() []grid.Coord {
	chain := n.Chain()
	path := make([]grid.Coord, len(chain))
	for i, c := range chain {
		path[len(chain)-1-i] = c.Coord
	}
	return path
}

// ByDistance orders nodes by Distance.
func ByDistance(a, b *Node) int { return cmp.Compare(a.Distance, b.Distance) }

// ByCost orders nodes by Cost.
func ByCost(a, b *Node) int { return cmp.Compare(a.Cost, b.Cost) }

// PathCost sums the step costs along path.
func PathCost(path []grid.Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += StepCost(path[i-1], path[i])
	}
	return total
}
