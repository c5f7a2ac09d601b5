package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"

	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// SVG serialization helper
//
// Elements accumulate in memory so Clear can drop them; WriteTo emits the
// whole document.
type SVG struct {
	viewBox geom.Rect
	body    bytes.Buffer
}

func NewSVG(viewBox geom.Rect) *SVG {
	return &SVG{viewBox: viewBox}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	fmt.Fprintf(&svg.body, format, a...)
}

func strokeStyle(st Stroke) string {
	return fmt.Sprintf("style='stroke: %s; stroke-width: %g; stroke-linecap: round; fill: none'", Hex(st.Color), st.Width)
}

func (svg *SVG) Clear() {
	svg.body.Reset()
}

func (svg *SVG) Line(p1, p2 geom.Coord, st Stroke) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, strokeStyle(st))
}

func (svg *SVG) Circle(c geom.Coord, r float64, st Stroke) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X, c.Y, r, strokeStyle(st))
}

func (svg *SVG) QuadBezier(p1, ctrl, p2 geom.Coord, st Stroke) {
	svg.printf("<path d='M%f,%f Q%f,%f %f,%f' %s/>\n",
		p1.X, p1.Y, ctrl.X, ctrl.Y, p2.X, p2.Y, strokeStyle(st))
}

func (svg *SVG) Polygon(pts []geom.Coord, fill color.RGBA) {
	if len(pts) < 3 {
		return
	}
	svg.printf("<path style='stroke: none; fill: %s' d='M%f,%f", Hex(fill), pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		svg.printf("\n  L%f,%f", p.X, p.Y)
	}
	svg.printf(" Z'/>\n")
}

func (svg *SVG) Text(s string, at geom.Coord, size float64, c color.RGBA) {
	svg.printf("<text x='%f' y='%f' font-family='sans-serif' font-size='%g' text-anchor='middle' fill='%s'>",
		at.X, at.Y, size, Hex(c))
	xml.EscapeText(&svg.body, []byte(s))
	svg.printf("</text>\n")
}

// WriteTo writes the complete SVG document.
func (svg *SVG) WriteTo(w io.Writer) (int64, error) {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f" width="%g" height="%g"
     xmlns="http://www.w3.org/2000/svg">
`, svg.viewBox.Min.X, svg.viewBox.Min.Y, svg.viewBox.Width(), svg.viewBox.Height(),
		svg.viewBox.Width(), svg.viewBox.Height())
	doc.Write(svg.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}
