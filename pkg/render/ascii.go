package render

import (
	"strings"

	"github.com/matzehuels/pathfinder/pkg/engine"
)

// Glyphs used by RenderASCII. Walls, source and target share the
// symbols of the grid file format.
const (
	GlyphFree   = '.'
	GlyphWall   = '#'
	GlyphOpen   = 'o'
	GlyphClosed = 'x'
	GlyphPath   = '*'
	GlyphSource = 'S'
	GlyphTarget = 'T'
)

var glyphs = map[engine.Cell]byte{
	engine.CellFree:   GlyphFree,
	engine.CellWall:   GlyphWall,
	engine.CellOpen:   GlyphOpen,
	engine.CellClosed: GlyphClosed,
	engine.CellPath:   GlyphPath,
	engine.CellSource: GlyphSource,
	engine.CellTarget: GlyphTarget,
}

// RenderASCII draws f as one line of glyphs per grid row.
func RenderASCII(f Frame) string {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for _, row := range f.Cells() {
		for _, c := range row {
			b.WriteByte(glyphs[c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
