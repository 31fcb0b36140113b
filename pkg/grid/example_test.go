package grid_test

import (
	"fmt"

	"github.com/matzehuels/pathfinder/pkg/grid"
)

func ExampleGrid_Traversable() {
	g, _ := grid.New(3, 3)
	_ = g.SetSource(grid.C(0, 0))
	_ = g.SetTarget(grid.C(2, 2))
	_ = g.AddWall(grid.C(1, 0))

	// The wall at (1,0) blocks the diagonal from (0,0) to (1,1).
	fmt.Println(g.Traversable(grid.C(0, 0)))
	// Output:
	// [(0,1)]
}

func ExampleParseASCII() {
	g, _ := grid.ParseASCII(`
S.#
..#
..T`)

	fmt.Println(g.Width(), g.Height())
	fmt.Println(g.Source(), g.Target(), g.Walls())
	fmt.Print(grid.FormatASCII(g))
	// Output:
	// 3 3
	// (0,0) (2,2) [(2,0) (2,1)]
	// S.#
	// ..#
	// ..T
}
