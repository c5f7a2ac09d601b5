// Package render paints layouts from the geometry package onto a 2D
// drawing surface. Two surfaces are provided: SVG text and an RGBA
// raster.
package render

import (
	"fmt"
	"image/color"

	"github.com/jbeda/geom"
)

// Stroke is the pen a line or curve is drawn with.
type Stroke struct {
	Color color.RGBA
	Width float64
}

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	// Clear wipes everything drawn so far.
	Clear()
	Line(p1, p2 geom.Coord, st Stroke)
	QuadBezier(p1, ctrl, p2 geom.Coord, st Stroke)
	Circle(c geom.Coord, r float64, st Stroke)
	// Polygon fills the closed polygon through pts.
	Polygon(pts []geom.Coord, fill color.RGBA)
	// Text draws s horizontally centered on at, with at.Y as baseline.
	Text(s string, at geom.Coord, size float64, c color.RGBA)
}

var (
	ColorCircumference = color.RGBA{R: 0xff, A: 0xff}
	ColorRadius        = color.RGBA{B: 0xff, A: 0xff}
	ColorText          = color.RGBA{A: 0xff}
	ColorError         = color.RGBA{R: 0xff, A: 0xff}
	ColorShapeFill     = color.RGBA{R: 0xe8, G: 0xf0, B: 0xff, A: 0xff}
	ColorBackground    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	LINE_WIDTH_HIGHLIGHT = 2
	LINE_WIDTH_NORMAL    = 1
	TEXT_SIZE            = 14
	ERROR_TEXT_SIZE      = 16
)

// Hex formats c as a CSS hex color.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
