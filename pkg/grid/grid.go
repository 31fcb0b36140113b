package grid

import (
	"maps"
	"slices"

	"github.com/matzehuels/pathfinder/pkg/errors"
)

// Grid size limits and defaults.
const (
	MinDimension = errors.MinDimension
	MaxDimension = errors.MaxDimension

	DefaultWidth  = 50
	DefaultHeight = 30
)

// Default source and target positions for a fresh grid. Both are clamped
// into bounds for grids too small to hold them.
var (
	DefaultSource = Coord{X: 1, Y: 1}
	DefaultTarget = Coord{X: 2, Y: 2}
)

// Grid is a rectangle of free and wall cells with one source and one target.
//
// Walls never overlap the source or the target. The source and target may
// coincide while editing; starting a search on such a grid is rejected by
// pkg/engine.
//
// The zero value is not usable; use [New] or [Default].
type Grid struct {
	width, height int
	source        Coord
	target        Coord
	walls         map[Coord]struct{}
}

// New creates an empty grid of the given size with the default source and
// target. Both dimensions must lie in [MinDimension, MaxDimension].
func New(width, height int) (*Grid, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	g := &Grid{
		width:  width,
		height: height,
		walls:  make(map[Coord]struct{}),
	}
	g.source = g.clamp(DefaultSource)
	g.target = g.clamp(DefaultTarget)
	return g, nil
}

// Default creates an empty DefaultWidth x DefaultHeight grid.
func Default() *Grid {
	g, _ := New(DefaultWidth, DefaultHeight)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Source returns the start cell.
func (g *Grid) Source() Coord { return g.source }

// Target returns the goal cell.
func (g *Grid) Target() Coord { return g.target }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// IsWall reports whether c is a wall. Out-of-bounds cells are not walls.
func (g *Grid) IsWall(c Coord) bool {
	_, ok := g.walls[c]
	return ok
}

// IsFree reports whether c is inside the grid and not a wall.
func (g *Grid) IsFree(c Coord) bool {
	return g.Contains(c) && !g.IsWall(c)
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int { return len(g.walls) }

// Walls returns the wall cells in row-major order.
func (g *Grid) Walls() []Coord {
	return slices.SortedFunc(maps.Keys(g.walls), Coord.Compare)
}

// Resize changes the grid dimensions. Walls that fall outside the new
// bounds are dropped and the source and target are clamped inside them.
// A clamped source or target that lands on a wall clears that wall.
func (g *Grid) Resize(width, height int) error {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return err
	}
	g.width, g.height = width, height
	maps.DeleteFunc(g.walls, func(c Coord, _ struct{}) bool {
		return !g.Contains(c)
	})
	g.source = g.clamp(g.source)
	g.target = g.clamp(g.target)
	delete(g.walls, g.source)
	delete(g.walls, g.target)
	return nil
}

// SetSource moves the source. The cell must be inside the grid and free.
func (g *Grid) SetSource(c Coord) error {
	if err := g.checkEndpoint("source", c); err != nil {
		return err
	}
	g.source = c
	return nil
}

// SetTarget moves the target. The cell must be inside the grid and free.
func (g *Grid) SetTarget(c Coord) error {
	if err := g.checkEndpoint("target", c); err != nil {
		return err
	}
	g.target = c
	return nil
}

func (g *Grid) checkEndpoint(what string, c Coord) error {
	if !g.Contains(c) {
		return outOfBounds(g, c)
	}
	if g.IsWall(c) {
		return errors.New(errors.ErrCodeInvalidInput, "cannot place %s on wall %s", what, c)
	}
	return nil
}

// AddWall turns c into a wall. Adding an existing wall is a no-op.
// The source and target cannot become walls.
func (g *Grid) AddWall(c Coord) error {
	if !g.Contains(c) {
		return outOfBounds(g, c)
	}
	switch c {
	case g.source:
		return errors.New(errors.ErrCodeInvalidInput, "cannot place wall on source %s", c)
	case g.target:
		return errors.New(errors.ErrCodeInvalidInput, "cannot place wall on target %s", c)
	}
	g.walls[c] = struct{}{}
	return nil
}

// RemoveWall frees c and reports whether it was a wall.
func (g *Grid) RemoveWall(c Coord) bool {
	if !g.IsWall(c) {
		return false
	}
	delete(g.walls, c)
	return true
}

// ToggleWall flips c between wall and free and returns whether it is a
// wall afterwards.
func (g *Grid) ToggleWall(c Coord) (bool, error) {
	if g.RemoveWall(c) {
		return false, nil
	}
	if err := g.AddWall(c); err != nil {
		return false, err
	}
	return true, nil
}

// ClearWalls removes every wall.
func (g *Grid) ClearWalls() {
	clear(g.walls)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.walls = maps.Clone(g.walls)
	if c.walls == nil {
		c.walls = make(map[Coord]struct{})
	}
	return &c
}

// Assign replaces the contents of g with a deep copy of o. Holders of g
// see the new grid without re-binding.
func (g *Grid) Assign(o *Grid) {
	*g = *o.Clone()
}

func (g *Grid) clamp(c Coord) Coord {
	return Coord{
		X: min(max(c.X, 0), g.width-1),
		Y: min(max(c.Y, 0), g.height-1),
	}
}

func outOfBounds(g *Grid, c Coord) error {
	return errors.New(errors.ErrCodeOutOfBounds, "%s is outside the %dx%d grid", c, g.width, g.height)
}
