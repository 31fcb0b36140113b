package grid

import (
	"math/rand/v2"

	"github.com/matzehuels/pathfinder/pkg/errors"
)

// newRand returns the generator used by ScatterWalls and Maze.
// The same seed always yields the same walls.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ScatterWalls replaces the walls of g with uniform noise: every cell other
// than the source and target becomes a wall with probability density.
// Density must lie in [0, 1].
func ScatterWalls(g *Grid, density float64, seed uint64) error {
	if density < 0 || density > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "wall density must be between 0 and 1, got %g", density)
	}
	r := newRand(seed)
	g.ClearWalls()
	for y := range g.height {
		for x := range g.width {
			c := Coord{X: x, Y: y}
			if r.Float64() < density && c != g.source && c != g.target {
				g.walls[c] = struct{}{}
			}
		}
	}
	return nil
}

var mazeSteps = [4]Coord{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// Maze replaces the walls of g with a randomized depth-first maze.
//
// Corridors are carved on the lattice of cells that share the source's
// parity, starting at the source, so every lattice cell is reachable from it.
// The target is always freed and joined to the lattice when the grid leaves
// room for it.
func Maze(g *Grid, seed uint64) {
	r := newRand(seed)
	open := map[Coord]bool{g.source: true}
	stack := []Coord{g.source}
	choices := make([]Coord, 0, len(mazeSteps))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		choices = choices[:0]
		for _, d := range mazeSteps {
			if n := cur.Add(d); g.Contains(n) && !open[n] {
				choices = append(choices, n)
			}
		}
		if len(choices) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := choices[r.IntN(len(choices))]
		open[Coord{X: (cur.X + next.X) / 2, Y: (cur.Y + next.Y) / 2}] = true
		open[next] = true
		stack = append(stack, next)
	}

	t := g.target
	open[t] = true
	if (t.X-g.source.X)%2 != 0 && (t.Y-g.source.Y)%2 != 0 {
		// Off-lattice on both axes: open a horizontal neighbor, which sits
		// between two lattice cells.
		for _, dx := range []int{-1, 1} {
			if n := (Coord{X: t.X + dx, Y: t.Y}); g.Contains(n) {
				open[n] = true
				break
			}
		}
	}

	g.ClearWalls()
	for y := range g.height {
		for x := range g.width {
			if c := (Coord{X: x, Y: y}); !open[c] {
				g.walls[c] = struct{}{}
			}
		}
	}
}
