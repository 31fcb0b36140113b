// Package grid provides the mutable 2-D grid that pathfinder searches.
//
// A [Grid] is a rectangle of cells addressed by [Coord]. Every cell is either
// free or a wall; one free cell is the source and one is the target. The grid
// is the implicit graph the search algorithms in pkg/search explore: each cell
// connects to its eight neighbors, orthogonal steps cost 1 and diagonal steps
// cost √2.
//
// # Movement Rules
//
// [Neighbors] applies three rules when expanding a cell:
//
//   - Cells outside the grid are never produced.
//   - Walls are never produced.
//   - A diagonal step is rejected when either of the two orthogonally
//     adjacent corner cells is a wall ("no corner cutting").
//
// Neighbors is generic over the node type: callers pass a factory that turns
// a coordinate into whatever node representation their algorithm uses.
//
//	nodes := grid.Neighbors(g, at, func(c grid.Coord) *search.Node {
//	    return search.NewNode(c)
//	})
//
// # Ownership
//
// A Grid is an ordinary value owned by its creator and passed by pointer to
// the algorithms that read it. It is not safe for concurrent use; pkg/engine
// serializes edits and searches behind one mutex and only allows edits while
// no search is in progress.
//
// # Generators and Files
//
// [ScatterWalls] and [Maze] fill a grid with walls deterministically for a
// given seed. [LoadFile] and [Decode] read grid presets stored as TOML,
// either as explicit coordinates or as an ASCII map:
//
//	map = """
//	S..#....
//	...#....
//	...#...T
//	"""
package grid
