package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/fonts"
)

// RenderPNG draws f as a PNG image.
func RenderPNG(f Frame, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	cs := float64(o.cellSize)
	w, h := f.Width*o.cellSize+1, f.Height*o.cellSize+1

	dc := gg.NewContext(w, h)
	dc.SetColor(ColorBackground)
	dc.Clear()

	for _, l := range cellLayers(f) {
		dc.SetColor(l.color)
		for _, c := range l.cells {
			if inBounds(f, c) {
				dc.DrawRectangle(float64(c.X)*cs, float64(c.Y)*cs, cs, cs)
			}
		}
		dc.Fill()
	}

	dc.SetColor(ColorGridLine)
	dc.SetLineWidth(1)
	for x := 0; x <= f.Width; x++ {
		dc.DrawLine(float64(x)*cs+0.5, 0, float64(x)*cs+0.5, float64(h))
	}
	for y := 0; y <= f.Height; y++ {
		dc.DrawLine(0, float64(y)*cs+0.5, float64(w), float64(y)*cs+0.5)
	}
	dc.Stroke()

	dc.SetLineCapRound()
	dc.SetLineWidth(max(1, cs/10))
	center := func(v int) float64 { return float64(v)*cs + cs/2 }

	if o.links {
		dc.SetColor(ColorLink)
		for _, links := range [][]engine.Link{f.Closed, f.Open} {
			for _, l := range links {
				if l.HasParent && inBounds(f, l.At) {
					dc.DrawLine(center(l.At.X), center(l.At.Y), center(l.Parent.X), center(l.Parent.Y))
				}
			}
		}
		dc.Stroke()
	}

	dc.SetColor(ColorPath)
	for _, p := range f.Paths {
		if len(p) < 2 {
			continue
		}
		dc.MoveTo(center(p[0].X), center(p[0].Y))
		for _, c := range p[1:] {
			dc.LineTo(center(c.X), center(c.Y))
		}
		dc.Stroke()
	}

	if o.cellSize >= minLabelSize {
		face, err := fonts.Face(cs * 0.6)
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		dc.SetFontFace(face)
		dc.SetColor(ColorLabel)
		for _, l := range endpointLabels(f) {
			dc.DrawStringAnchored(l.text, center(l.at.X), center(l.at.Y), 0.5, 0.35)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
