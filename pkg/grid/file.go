package grid

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pathfinder/pkg/errors"
)

// ASCII map symbols.
const (
	SymbolFree   = '.'
	SymbolWall   = '#'
	SymbolSource = 'S'
	SymbolTarget = 'T'
)

// File is the TOML layout of a grid preset. A preset describes the grid
// either with explicit keys or with an ASCII Map, not both.
//
//	width  = 8
//	height = 3
//	source = { x = 0, y = 0 }
//	target = { x = 7, y = 2 }
//	walls  = [{ x = 3, y = 0 }, { x = 3, y = 1 }]
type File struct {
	Name   string  `toml:"name"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Source *Coord  `toml:"source"`
	Target *Coord  `toml:"target"`
	Walls  []Coord `toml:"walls"`
	Map    string  `toml:"map"`
}

// LoadFile reads a grid preset from a TOML file.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGridFile, err, "open %s", path)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Decode reads a TOML grid preset from r.
func Decode(r io.Reader) (*Grid, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGridFile, err, "decode grid")
	}
	return f.Grid()
}

// Grid builds the grid described by the preset.
func (f File) Grid() (*Grid, error) {
	if strings.TrimSpace(f.Map) != "" {
		return f.mapGrid()
	}

	w, h := f.Width, f.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	g, err := New(w, h)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGridFile, err, "grid size")
	}
	if f.Source != nil {
		if err := g.SetSource(*f.Source); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGridFile, err, "source")
		}
	}
	if f.Target != nil {
		if err := g.SetTarget(*f.Target); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGridFile, err, "target")
		}
	}
	for _, c := range f.Walls {
		if err := g.AddWall(c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGridFile, err, "walls")
		}
	}
	return g, nil
}

func (f File) mapGrid() (*Grid, error) {
	if len(f.Walls) > 0 || f.Source != nil || f.Target != nil {
		return nil, errors.New(errors.ErrCodeInvalidGridFile, "map cannot be combined with source, target or walls")
	}
	g, err := ParseASCII(f.Map)
	if err != nil {
		return nil, err
	}
	if (f.Width != 0 && f.Width != g.width) || (f.Height != 0 && f.Height != g.height) {
		return nil, errors.New(errors.ErrCodeInvalidGridFile,
			"map is %dx%d but width/height say %dx%d", g.width, g.height, f.Width, f.Height)
	}
	return g, nil
}

// ParseASCII builds a grid from rows of map symbols. Blank leading and
// trailing lines are ignored; every row must have the same width and the map
// must contain exactly one source and one target.
func ParseASCII(s string) (*Grid, error) {
	rows := asciiRows(s)
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGridFile, "empty map")
	}
	width := len(rows[0])
	g, err := New(width, len(rows))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGridFile, err, "map size")
	}

	var sources, targets, walls []Coord
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.New(errors.ErrCodeInvalidGridFile, "row %d has width %d, want %d", y, len(row), width)
		}
		for x, ch := range []byte(row) {
			c := Coord{X: x, Y: y}
			switch ch {
			case SymbolFree:
			case SymbolWall:
				walls = append(walls, c)
			case SymbolSource:
				sources = append(sources, c)
			case SymbolTarget:
				targets = append(targets, c)
			default:
				return nil, errors.New(errors.ErrCodeInvalidGridFile, "unexpected symbol %q at %s", ch, c)
			}
		}
	}
	if len(sources) != 1 || len(targets) != 1 {
		return nil, errors.New(errors.ErrCodeInvalidGridFile,
			"map needs exactly one %c and one %c, found %d and %d",
			SymbolSource, SymbolTarget, len(sources), len(targets))
	}

	g.source, g.target = sources[0], targets[0]
	for _, c := range walls {
		g.walls[c] = struct{}{}
	}
	return g, nil
}

func asciiRows(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, strings.TrimSpace(l))
	}
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// FormatASCII writes g as map rows, one line per row. When the source and
// target coincide the cell shows the source.
func FormatASCII(g *Grid) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := range g.height {
		for x := range g.width {
			c := Coord{X: x, Y: y}
			switch {
			case c == g.source:
				b.WriteByte(SymbolSource)
			case c == g.target:
				b.WriteByte(SymbolTarget)
			case g.IsWall(c):
				b.WriteByte(SymbolWall)
			default:
				b.WriteByte(SymbolFree)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
