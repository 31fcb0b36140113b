package grid

import (
	"cmp"
	"fmt"
)

// Coord addresses one grid cell. X grows to the right, Y grows downward.
// Coords are comparable and usable as map keys.
type Coord struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// IsDiagonal reports whether c and o differ on both axes.
func (c Coord) IsDiagonal(o Coord) bool { return c.X != o.X && c.Y != o.Y }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Compare orders coordinates row-major: by Y, then by X.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.Y, o.Y); r != 0 {
		return r
	}
	return cmp.Compare(c.X, o.X)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Delta returns the absolute per-axis distance between c and o.
func (c Coord) Delta(o Coord) (dx, dy int) {
	return abs(c.X - o.X), abs(c.Y - o.Y)
}
