package grid

// offsets lists the eight moves in expansion order: column by column from
// left to right, top to bottom within each column.
var offsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns a freshly built node for every cell reachable from at in
// one step. newNode turns each reachable coordinate into the caller's node
// type; no shared state is touched.
//
// Out-of-bounds cells and walls are skipped. A diagonal move is skipped
// when either orthogonal corner cell it would squeeze past is a wall.
func Neighbors[N any](g *Grid, at Coord, newNode func(Coord) N) []N {
	out := make([]N, 0, len(offsets))
	for _, d := range offsets {
		next := at.Add(d)
		if !g.Contains(next) || g.IsWall(next) {
			continue
		}
		if d.X != 0 && d.Y != 0 {
			if g.IsWall(Coord{X: next.X, Y: at.Y}) || g.IsWall(Coord{X: at.X, Y: next.Y}) {
				continue
			}
		}
		out = append(out, newNode(next))
	}
	return out
}

// Traversable returns the coordinates reachable from at in one step.
func (g *Grid) Traversable(at Coord) []Coord {
	return Neighbors(g, at, func(c Coord) Coord { return c })
}
