package render

import (
	"image/color"

	"circle-sectors/geometry"

	"github.com/jbeda/geom"
)

// PaintSectors draws the circumference and every radius. Radius 0 is
// highlighted.
func PaintSectors(s Surface, sl geometry.SectorLayout) {
	s.Circle(sl.Circumference.Center, sl.Circumference.Radius,
		Stroke{Color: ColorCircumference, Width: LINE_WIDTH_HIGHLIGHT})
	for _, r := range sl.Radii {
		width := float64(LINE_WIDTH_NORMAL)
		if r.Index == 0 {
			width = LINE_WIDTH_HIGHLIGHT
		}
		s.Line(r.From, r.To, Stroke{Color: ColorRadius, Width: width})
	}
}

// PaintRearranged draws the rearranged shape: a light fill of its
// outline clipped to the canvas, the sector edges, the curved top and
// bottom, the closing right edge and the caption.
func PaintRearranged(s Surface, rs geometry.RearrangedShape) {
	for _, c := range rs.Fill() {
		pts := make([]geom.Coord, len(c))
		for i, p := range c {
			pts[i] = geom.Coord{X: p.X, Y: p.Y}
		}
		s.Polygon(pts, ColorShapeFill)
	}

	edge := Stroke{Color: ColorRadius, Width: LINE_WIDTH_HIGHLIGHT}
	arc := Stroke{Color: ColorCircumference, Width: LINE_WIDTH_HIGHLIGHT}
	for _, sp := range rs.Sectors {
		s.Line(sp.LeftEdge.From, sp.LeftEdge.To, edge)
		s.Line(sp.RightEdge.From, sp.RightEdge.To, edge)
		s.QuadBezier(sp.Top.Start, sp.Top.Control, sp.Top.End, arc)
		s.QuadBezier(sp.Bottom.Start, sp.Bottom.Control, sp.Bottom.End, arc)
	}
	s.Line(rs.Closing.From, rs.Closing.To, edge)

	PaintCaption(s, rs.Caption)
}

// PaintCaption prints the caption lines one below the other.
func PaintCaption(s Surface, c geometry.Caption) {
	at := c.Anchor
	for _, line := range c.Lines {
		s.Text(line, at, c.Size, ColorText)
		at.Y += geometry.CAPTION_LINE_HEIGHT
	}
}

// PaintMessage prints a single centered line of text.
func PaintMessage(s Surface, msg string, at geom.Coord, size float64, c color.RGBA) {
	s.Text(msg, at, size, c)
}
