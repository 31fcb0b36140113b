package search

import "github.com/matzehuels/pathfinder/pkg/grid"

// Bidirectional runs two uniform-cost searches, one from the source and
// one from the target, alternating one pop each per step with the source
// side first. It stops when a side pops a cell the other side has already
// queued or closed, and joins the two parent chains at that cell.
//
// The meeting rule finds a path whenever one exists but, unlike Dijkstra,
// does not guarantee it is the cheapest.
type Bidirectional struct {
	lifecycle
	grid *grid.Grid

	fromSource *frontier
	fromTarget *frontier

	currentS *Node
	currentT *Node
	path     *Node
}

// NewBidirectional returns an idle bidirectional search over g.
func NewBidirectional(g *grid.Grid) *Bidirectional {
	return &Bidirectional{
		grid:       g,
		fromSource: newFrontier(ByDistance),
		fromTarget: newFrontier(ByDistance),
	}
}

func (b *Bidirectional) Name() string { return "Bidirectional Best-First Search" }

func (b *Bidirectional) Init() error {
	if err := b.beginInit(b.Name()); err != nil {
		return err
	}
	b.fromSource.push(NewNode(b.grid.Source()))
	b.fromTarget.push(NewNode(b.grid.Target()))
	return nil
}

func (b *Bidirectional) Step() (bool, error) {
	if skip, err := b.beginStep(b.Name()); skip {
		return err == nil, err
	}
	if b.fromSource.empty() || b.fromTarget.empty() {
		b.currentS, b.currentT = nil, nil
		b.finish()
		return true, nil
	}

	s, _ := b.fromSource.pop()
	b.currentS = s
	if twin, ok := b.fromTarget.seen(s.Coord); ok {
		b.path = splice(s, twin)
		b.finish()
		return true, nil
	}
	b.fromSource.close(s)
	b.fromSource.relax(b.grid, s, byDistance)

	t, _ := b.fromTarget.pop()
	b.currentT = t
	if twin, ok := b.fromSource.seen(t.Coord); ok {
		b.path = splice(twin, t)
		b.finish()
		return true, nil
	}
	b.fromTarget.close(t)
	b.fromTarget.relax(b.grid, t, byDistance)
	return false, nil
}

// splice joins the source-side chain ending at s with the target-side chain
// ending at t, where s and t sit on the same cell. It returns the node at the
// target end of a fresh chain whose parents lead back to the source. Neither
// input chain is modified.
func splice(s, t *Node) *Node {
	sChain := s.Chain()
	var head *Node
	for i := len(sChain) - 1; i >= 0; i-- {
		head = &Node{Coord: sChain[i].Coord, Parent: head, Distance: sChain[i].Distance}
		head.Cost = head.Distance
	}
	total := s.Distance + t.Distance
	for n := t.Parent; n != nil; n = n.Parent {
		head = &Node{Coord: n.Coord, Parent: head, Distance: total - n.Distance}
		head.Cost = head.Distance
	}
	return head
}

func (b *Bidirectional) Reset() {
	b.fromSource.reset()
	b.fromTarget.reset()
	b.currentS, b.currentT, b.path = nil, nil, nil
	b.lifecycle.reset()
}

func (b *Bidirectional) Unvisited() []*Node {
	return append(b.fromSource.unvisited(), b.fromTarget.unvisited()...)
}

func (b *Bidirectional) Visited() []*Node {
	return append(b.fromSource.visited(), b.fromTarget.visited()...)
}

func (b *Bidirectional) BestPaths() []*Node {
	if b.path != nil {
		return []*Node{b.path}
	}
	var out []*Node
	for _, n := range []*Node{b.currentS, b.currentT} {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
