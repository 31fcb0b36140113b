package render

import (
	"bytes"
	"image/color"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

// Frame is the snapshot being drawn.
type Frame = engine.Snapshot

// DefaultCellSize is the edge length of one cell in pixels.
const DefaultCellSize = 30

// Palette.
var (
	ColorBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorWall       = color.RGBA{0x80, 0x80, 0x80, 0xff}
	ColorClosed     = color.RGBA{0x00, 0x00, 0xff, 0xff}
	ColorOpen       = color.RGBA{0x00, 0xff, 0xff, 0xff}
	ColorTarget     = color.RGBA{0x00, 0xff, 0x00, 0xff}
	ColorSource     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	ColorGridLine   = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	ColorLink       = color.RGBA{0x80, 0x80, 0x80, 0xff}
	ColorPath       = color.RGBA{0xff, 0xff, 0x00, 0xff}
	ColorLabel      = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// minLabelSize is the smallest cell size, in pixels, whose source and
// target cells are labeled.
const minLabelSize = 12

// Option configures the SVG and PNG renderers.
type Option func(*options)

type options struct {
	cellSize int
	links    bool
}

func newOptions(opts []Option) options {
	o := options{cellSize: DefaultCellSize, links: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCellSize sets the cell edge length in pixels. Sizes outside
// [errors.MinCellSize, errors.MaxCellSize] are ignored.
func WithCellSize(px int) Option {
	return func(o *options) {
		if errors.ValidateCellSize(px) == nil {
			o.cellSize = px
		}
	}
}

// WithLinks toggles the parent links of explored cells. Best paths are
// always drawn.
func WithLinks(show bool) Option {
	return func(o *options) { o.links = show }
}

// layer is one group of same-colored cells.
type layer struct {
	color color.RGBA
	cells []grid.Coord
}

func cellLayers(f Frame) []layer {
	at := func(links []engine.Link) []grid.Coord {
		out := make([]grid.Coord, len(links))
		for i, l := range links {
			out[i] = l.At
		}
		return out
	}
	return []layer{
		{ColorWall, f.Walls},
		{ColorClosed, at(f.Closed)},
		{ColorOpen, at(f.Open)},
		{ColorTarget, []grid.Coord{f.Target}},
		{ColorSource, []grid.Coord{f.Source}},
	}
}

func inBounds(f Frame, c grid.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < f.Width && c.Y < f.Height
}

type label struct {
	text string
	at   grid.Coord
}

// endpointLabels names the source and target cells. The source is listed
// last so it wins when both share a cell.
func endpointLabels(f Frame) []label {
	return []label{{"T", f.Target}, {"S", f.Source}}
}

// Render encodes f in the named format.
func Render(f Frame, format string, opts ...Option) ([]byte, error) {
	if err := errors.ValidateFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case "svg":
		return RenderSVG(f, opts...), nil
	case "png":
		return RenderPNG(f, opts...)
	case "dot":
		return []byte(ToDOT(f)), nil
	case "txt":
		return []byte(RenderASCII(f)), nil
	default:
		var buf bytes.Buffer
		if err := WriteJSON(&buf, f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
