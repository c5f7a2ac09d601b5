package geometry

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/jbeda/geom"
)

// FLATTEN_STEPS is how many straight pieces each Bézier edge becomes when
// the outline is flattened.
const FLATTEN_STEPS = 16

// Flatten returns the points of the curve after its start, ending at End.
func (a ArcSpan) Flatten(steps int) []geom.Coord {
	if steps < 1 {
		steps = 1
	}
	pts := make([]geom.Coord, 0, steps)
	for i := 1; i <= steps; i++ {
		pts = append(pts, a.At(float64(i)/float64(steps)))
	}
	return pts
}

// Reverse swaps the ends of the curve.
func (a ArcSpan) Reverse() ArcSpan {
	return ArcSpan{Start: a.End, Control: a.Control, End: a.Start}
}

// Outline is the closed perimeter of the shape: top arcs left to right,
// the closing edge, bottom arcs right to left, then the implicit edge
// back to the start.
func (rs RearrangedShape) Outline() polyclip.Contour {
	if len(rs.Sectors) == 0 {
		return nil
	}
	c := make(polyclip.Contour, 0, 2*len(rs.Sectors)*FLATTEN_STEPS+2)
	c.Add(toPoint(rs.Sectors[0].Top.Start))
	for _, s := range rs.Sectors {
		for _, p := range s.Top.Flatten(FLATTEN_STEPS) {
			c.Add(toPoint(p))
		}
	}
	// The closing edge ends where the last bottom arc ends.
	c.Add(toPoint(rs.Closing.To))
	for i := len(rs.Sectors) - 1; i >= 0; i-- {
		for _, p := range rs.Sectors[i].Bottom.Reverse().Flatten(FLATTEN_STEPS) {
			c.Add(toPoint(p))
		}
	}
	return c
}

// OutlineArea is the area enclosed by Outline. It is πr² plus the area
// under the Bézier bulges, which shrinks as n grows.
func (rs RearrangedShape) OutlineArea() float64 {
	return contourArea(rs.Outline())
}

// Clip intersects the outline with r.
func (rs RearrangedShape) Clip(r geom.Rect) polyclip.Polygon {
	outline := rs.Outline()
	if outline == nil {
		return nil
	}
	frame := polyclip.Contour{
		toPoint(r.Min),
		{X: r.Max.X, Y: r.Min.Y},
		toPoint(r.Max),
		{X: r.Min.X, Y: r.Max.Y},
	}
	return polyclip.Polygon{outline}.Construct(polyclip.INTERSECTION, polyclip.Polygon{frame})
}

// Fill is the part of the outline that lies on the canvas.
func (rs RearrangedShape) Fill() polyclip.Polygon {
	return rs.Clip(rs.Canvas)
}

// PolygonArea sums the shoelace areas of the contours of p.
func PolygonArea(p polyclip.Polygon) float64 {
	area := 0.0
	for _, c := range p {
		area += contourArea(c)
	}
	return area
}

func contourArea(c polyclip.Contour) float64 {
	area := 0.0
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += c[i].X * c[j].Y
		area -= c[j].X * c[i].Y
	}
	return math.Abs(area) / 2
}

func toPoint(c geom.Coord) polyclip.Point {
	return polyclip.Point{X: c.X, Y: c.Y}
}
