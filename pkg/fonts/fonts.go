// Package fonts provides the typeface used to label rendered frames.
//
// The Go Bold font ships with golang.org/x/image, so PNG frames need no
// system fonts. SVG frames name the same family and fall back to the
// viewer's sans-serif.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// FontFamily is the CSS font-family for SVG labels.
const FontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

var (
	bold     *truetype.Font
	boldErr  error
	boldOnce sync.Once
)

// Bold returns the parsed Go Bold typeface. It is parsed once on first use.
func Bold() (*truetype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = truetype.Parse(gobold.TTF)
	})
	return bold, boldErr
}

// Face returns Go Bold at size points and 72 DPI, so one point is one pixel.
func Face(size float64) (font.Face, error) {
	f, err := Bold()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}
