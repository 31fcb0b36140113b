package engine

import (
	"time"

	"github.com/matzehuels/pathfinder/pkg/grid"
	"github.com/matzehuels/pathfinder/pkg/search"
)

// Link is one explored cell and the cell it was reached from.
type Link struct {
	At        grid.Coord `json:"at"`
	Parent    grid.Coord `json:"parent"`
	HasParent bool       `json:"has_parent"`
	Distance  float64    `json:"distance"`
}

func linksOf(nodes []*search.Node) []Link {
	links := make([]Link, len(nodes))
	for i, n := range nodes {
		links[i] = Link{At: n.Coord, Distance: n.Distance}
		if n.Parent != nil {
			links[i].Parent = n.Parent.Coord
			links[i].HasParent = true
		}
	}
	return links
}

// Snapshot is a consistent copy of an engine's state. It shares nothing
// with the engine and may be read without synchronization.
type Snapshot struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Source grid.Coord   `json:"source"`
	Target grid.Coord   `json:"target"`
	Walls  []grid.Coord `json:"walls"`

	Open   []Link         `json:"open"`
	Closed []Link         `json:"closed"`
	Paths  [][]grid.Coord `json:"paths"`

	Algorithm    string        `json:"algorithm"`
	AlgorithmKey string        `json:"algorithm_key"`
	Phase        Phase         `json:"phase"`
	Iterations   int           `json:"iterations"`
	Speed        int           `json:"speed"`
	Found        bool          `json:"found"`
	Cost         float64       `json:"cost,omitempty"`
	Elapsed      time.Duration `json:"elapsed,omitempty"`
}

// Snapshot copies the grid and the active search state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	alg := e.active.Algorithm
	s := Snapshot{
		Width:        e.grid.Width(),
		Height:       e.grid.Height(),
		Source:       e.grid.Source(),
		Target:       e.grid.Target(),
		Walls:        e.grid.Walls(),
		Open:         linksOf(alg.Unvisited()),
		Closed:       linksOf(alg.Visited()),
		Algorithm:    e.active.Name,
		AlgorithmKey: e.active.Key,
		Phase:        phaseOf(alg.State()),
		Iterations:   e.iterations,
		Speed:        e.speed,
		Elapsed:      e.elapsed,
	}
	for _, n := range alg.BestPaths() {
		s.Paths = append(s.Paths, n.Path())
	}
	if n, ok := search.Solution(alg); ok {
		s.Found = true
		s.Cost = n.Distance
	}
	return s
}

// Cell classifies one coordinate of the snapshot for rendering.
type Cell int

const (
	CellFree Cell = iota
	CellWall
	CellOpen
	CellClosed
	CellPath
	CellSource
	CellTarget
)

// Cells returns a Height x Width matrix of cell kinds. Later layers win:
// walls, closed, open, path, then target and source.
func (s Snapshot) Cells() [][]Cell {
	cells := make([][]Cell, s.Height)
	for y := range cells {
		cells[y] = make([]Cell, s.Width)
	}
	set := func(c grid.Coord, k Cell) {
		if c.Y >= 0 && c.Y < s.Height && c.X >= 0 && c.X < s.Width {
			cells[c.Y][c.X] = k
		}
	}
	for _, c := range s.Walls {
		set(c, CellWall)
	}
	for _, l := range s.Closed {
		set(l.At, CellClosed)
	}
	for _, l := range s.Open {
		set(l.At, CellOpen)
	}
	for _, p := range s.Paths {
		for _, c := range p {
			set(c, CellPath)
		}
	}
	set(s.Target, CellTarget)
	set(s.Source, CellSource)
	return cells
}
