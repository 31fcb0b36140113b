package search

import "github.com/matzehuels/pathfinder/pkg/grid"

// single is the shared single-source best-first loop behind Dijkstra and A*.
type single struct {
	lifecycle
	name    string
	grid    *grid.Grid
	f       *frontier
	score   func(*Node)
	current *Node
}

func newSingle(name string, g *grid.Grid, compare func(a, b *Node) int, score func(*Node)) single {
	return single{
		name:  name,
		grid:  g,
		f:     newFrontier(compare),
		score: score,
	}
}

func (s *single) Name() string { return s.name }

func (s *single) Init() error {
	if err := s.beginInit(s.name); err != nil {
		return err
	}
	origin := NewNode(s.grid.Source())
	s.score(origin)
	s.f.push(origin)
	return nil
}

func (s *single) Step() (bool, error) {
	if skip, err := s.beginStep(s.name); skip {
		return err == nil, err
	}
	n, ok := s.f.pop()
	if !ok {
		s.current = nil
		s.finish()
		return true, nil
	}
	s.current = n
	if n.Coord == s.grid.Target() {
		s.finish()
		return true, nil
	}
	s.f.close(n)
	s.f.relax(s.grid, n, s.score)
	return false, nil
}

func (s *single) Reset() {
	s.f.reset()
	s.current = nil
	s.lifecycle.reset()
}

func (s *single) Unvisited() []*Node { return s.f.unvisited() }

func (s *single) Visited() []*Node { return s.f.visited() }

func (s *single) BestPaths() []*Node {
	if s.current == nil {
		return nil
	}
	return []*Node{s.current}
}

// Dijkstra is uniform-cost search: the frontier is ordered by distance from
// the source, so the target is popped along a shortest path.
type Dijkstra struct {
	single
}

// NewDijkstra returns an idle Dijkstra search over g.
func NewDijkstra(g *grid.Grid) *Dijkstra {
	return &Dijkstra{single: newSingle("Dijkstra", g, ByDistance, byDistance)}
}
