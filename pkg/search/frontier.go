package search

import (
	"github.com/matzehuels/pathfinder/pkg/grid"
	"github.com/matzehuels/pathfinder/pkg/heap"
)

// frontier is one open/closed set pair. Every coordinate is unseen, open
// (queued and in open) or closed; a popped node that has not been closed yet
// belongs to the caller.
type frontier struct {
	queue  *heap.Heap[*Node]
	open   map[grid.Coord]*Node
	closed map[grid.Coord]*Node
	order  []*Node // closed nodes in closing order
}

func newFrontier(compare func(a, b *Node) int) *frontier {
	return &frontier{
		queue:  heap.New(compare),
		open:   make(map[grid.Coord]*Node),
		closed: make(map[grid.Coord]*Node),
	}
}

func (f *frontier) push(n *Node) {
	f.queue.Push(n)
	f.open[n.Coord] = n
}

func (f *frontier) pop() (*Node, bool) {
	n, ok := f.queue.Pop()
	if ok {
		delete(f.open, n.Coord)
	}
	return n, ok
}

func (f *frontier) empty() bool { return f.queue.Empty() }

func (f *frontier) close(n *Node) {
	f.closed[n.Coord] = n
	f.order = append(f.order, n)
}

// seen returns the open or closed node at c.
func (f *frontier) seen(c grid.Coord) (*Node, bool) {
	if n, ok := f.open[c]; ok {
		return n, true
	}
	n, ok := f.closed[c]
	return n, ok
}

// relax offers every traversable neighbor of from to the frontier. Unseen
// neighbors are queued; open neighbors are relinked to from when that is
// strictly shorter. Closed neighbors are left alone. score sets the frontier
// key after every distance change.
func (f *frontier) relax(g *grid.Grid, from *Node, score func(*Node)) {
	for _, next := range grid.Neighbors(g, from.Coord, NewNode) {
		if _, done := f.closed[next.Coord]; done {
			continue
		}
		dist := from.Distance + StepCost(from.Coord, next.Coord)
		old, queued := f.open[next.Coord]
		if !queued {
			next.Parent, next.Distance = from, dist
			score(next)
			f.push(next)
			continue
		}
		if dist < old.Distance {
			old.Parent, old.Distance = from, dist
			score(old)
			f.queue.Resort(old)
		}
	}
}

func (f *frontier) unvisited() []*Node { return f.queue.Items() }

func (f *frontier) visited() []*Node {
	out := make([]*Node, len(f.order))
	copy(out, f.order)
	return out
}

func (f *frontier) reset() {
	f.queue.Clear()
	clear(f.open)
	clear(f.closed)
	f.order = nil
}

// byDistance is the score of uninformed searches.
func byDistance(n *Node) { n.Cost = n.Distance }
