package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/fonts"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RenderSVG draws f as a standalone SVG document.
func RenderSVG(f Frame, opts ...Option) []byte {
	o := newOptions(opts)
	cs := o.cellSize
	w, h := f.Width*cs+1, f.Height*cs+1

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <title>%s: %s, %d iterations</title>`+"\n", f.Algorithm, f.Phase, f.Iterations)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", w, h, hex(ColorBackground))

	for _, l := range cellLayers(f) {
		fmt.Fprintf(&buf, `  <g fill="%s">`+"\n", hex(l.color))
		for _, c := range l.cells {
			if inBounds(f, c) {
				fmt.Fprintf(&buf, `    <rect x="%d" y="%d" width="%d" height="%d"/>`+"\n", c.X*cs, c.Y*cs, cs, cs)
			}
		}
		buf.WriteString("  </g>\n")
	}

	fmt.Fprintf(&buf, `  <g stroke="%s" stroke-width="1">`+"\n", hex(ColorGridLine))
	for x := 0; x <= f.Width; x++ {
		fmt.Fprintf(&buf, `    <line x1="%d" y1="0" x2="%d" y2="%d"/>`+"\n", x*cs, x*cs, h-1)
	}
	for y := 0; y <= f.Height; y++ {
		fmt.Fprintf(&buf, `    <line x1="0" y1="%d" x2="%d" y2="%d"/>`+"\n", y*cs, w-1, y*cs)
	}
	buf.WriteString("  </g>\n")

	stroke := max(1, cs/10)
	if o.links {
		fmt.Fprintf(&buf, `  <g class="links" stroke="%s" stroke-width="%d" stroke-linecap="round">`+"\n", hex(ColorLink), stroke)
		for _, links := range [][]engine.Link{f.Closed, f.Open} {
			for _, l := range links {
				if l.HasParent && inBounds(f, l.At) {
					writeLine(&buf, l.At, l.Parent, cs)
				}
			}
		}
		buf.WriteString("  </g>\n")
	}

	fmt.Fprintf(&buf, `  <g class="paths" stroke="%s" stroke-width="%d" stroke-linecap="round">`+"\n", hex(ColorPath), stroke)
	for _, p := range f.Paths {
		for i := 1; i < len(p); i++ {
			writeLine(&buf, p[i-1], p[i], cs)
		}
	}
	buf.WriteString("  </g>\n")

	if cs >= minLabelSize {
		fmt.Fprintf(&buf, `  <g class="labels" fill="%s" font-family="%s" font-size="%d" font-weight="bold" text-anchor="middle" dominant-baseline="central">`+"\n",
			hex(ColorLabel), fonts.FontFamily, cs*3/5)
		for _, l := range endpointLabels(f) {
			fmt.Fprintf(&buf, `    <text x="%d" y="%d">%s</text>`+"\n", l.at.X*cs+cs/2, l.at.Y*cs+cs/2, l.text)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeLine(buf *bytes.Buffer, a, b grid.Coord, cs int) {
	mid := cs / 2
	fmt.Fprintf(buf, `    <line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n",
		a.X*cs+mid, a.Y*cs+mid, b.X*cs+mid, b.Y*cs+mid)
}
