package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"circle-sectors/utils"

	"github.com/jbeda/geom"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Tunables for flattening curves into polylines.
const (
	CIRCLE_STEPS = 128
	CURVE_STEPS  = 32
	DISC_STEPS   = 16
)

// Raster paints onto an RGBA image with an anti-aliasing rasterizer.
type Raster struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	bg    color.RGBA
	fnt   *opentype.Font
	faces map[float64]font.Face
}

// NewRaster creates a w x h surface cleared to bg. A zero bg gives a
// transparent layer.
func NewRaster(w, h int, bg color.RGBA) *Raster {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font
	}
	r := &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:   vector.NewRasterizer(w, h),
		bg:    bg,
		fnt:   fnt,
		faces: map[float64]font.Face{},
	}
	r.Clear()
	return r
}

// Image returns the backing image. It is live: later drawing shows up in it.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)
}

// Erase makes rect transparent.
func (r *Raster) Erase(rect image.Rectangle) {
	draw.Draw(r.img, rect.Intersect(r.img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
}

func (r *Raster) paint(c color.RGBA) {
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// addQuad adds the rectangle around p1-p2. Every quad and disc winds the
// same way so overlapping pieces never cancel out.
func (r *Raster) addQuad(p1, p2 geom.Coord, width float64) {
	d := p2.Minus(p1)
	length := d.Magnitude()
	if length == 0 {
		return
	}
	half := width / 2
	n := geom.Coord{X: -d.Y / length * half, Y: d.X / length * half}
	a, b := p1.Plus(n), p2.Plus(n)
	c, e := p2.Minus(n), p1.Minus(n)
	r.ras.MoveTo(float32(a.X), float32(a.Y))
	r.ras.LineTo(float32(b.X), float32(b.Y))
	r.ras.LineTo(float32(c.X), float32(c.Y))
	r.ras.LineTo(float32(e.X), float32(e.Y))
	r.ras.ClosePath()
}

func (r *Raster) addDisc(c geom.Coord, radius float64, steps int) {
	for i := 0; i <= steps; i++ {
		angle := -2 * math.Pi * float64(i) / float64(steps)
		x := float32(c.X + radius*math.Cos(angle))
		y := float32(c.Y + radius*math.Sin(angle))
		if i == 0 {
			r.ras.MoveTo(x, y)
		} else {
			r.ras.LineTo(x, y)
		}
	}
	r.ras.ClosePath()
}

// addPolyline strokes pts with round joins and caps.
func (r *Raster) addPolyline(pts []geom.Coord, width float64) {
	for i := range pts {
		if i > 0 {
			r.addQuad(pts[i-1], pts[i], width)
		}
		r.addDisc(pts[i], width/2, DISC_STEPS)
	}
}

// Line draws p1-p2 with round caps, matching the SVG back end.
func (r *Raster) Line(p1, p2 geom.Coord, st Stroke) {
	r.StrokeRound(p1, p2, st)
}

// StrokeRound draws p1-p2 with round caps, as a pen does.
func (r *Raster) StrokeRound(p1, p2 geom.Coord, st Stroke) {
	r.begin()
	r.addQuad(p1, p2, st.Width)
	r.addDisc(p1, st.Width/2, DISC_STEPS)
	r.addDisc(p2, st.Width/2, DISC_STEPS)
	r.paint(st.Color)
}

func (r *Raster) QuadBezier(p1, ctrl, p2 geom.Coord, st Stroke) {
	pts := make([]geom.Coord, 0, CURVE_STEPS+1)
	for i := 0; i <= CURVE_STEPS; i++ {
		t := float64(i) / CURVE_STEPS
		u := 1 - t
		pts = append(pts, p1.Times(u*u).Plus(ctrl.Times(2*u*t)).Plus(p2.Times(t*t)))
	}
	r.begin()
	r.addPolyline(pts, st.Width)
	r.paint(st.Color)
}

// Circle strokes the ring between two concentric polygons wound in
// opposite directions.
func (r *Raster) Circle(c geom.Coord, radius float64, st Stroke) {
	half := st.Width / 2
	r.begin()
	for pass, rr := range []float64{radius + half, radius - half} {
		dir := 1.0
		if pass == 1 {
			dir = -1
		}
		for i := 0; i <= CIRCLE_STEPS; i++ {
			angle := dir * 2 * math.Pi * float64(i) / CIRCLE_STEPS
			x := float32(c.X + rr*math.Cos(angle))
			y := float32(c.Y + rr*math.Sin(angle))
			if i == 0 {
				r.ras.MoveTo(x, y)
			} else {
				r.ras.LineTo(x, y)
			}
		}
		r.ras.ClosePath()
	}
	r.paint(st.Color)
}

func (r *Raster) Polygon(pts []geom.Coord, fill color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r.begin()
	r.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.ras.LineTo(float32(p.X), float32(p.Y))
	}
	r.ras.ClosePath()
	r.paint(fill)
}

func (r *Raster) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(r.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		utils.Warn(err, fmt.Sprintf("no font face at size %g", size))
		return nil
	}
	r.faces[size] = f
	return f
}

func (r *Raster) Text(s string, at geom.Coord, size float64, c color.RGBA) {
	face := r.face(size)
	if face == nil {
		return
	}
	width := font.MeasureString(face, s)
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(at.X*64) - width/2,
			Y: fixed.Int26_6(at.Y * 64),
		},
	}
	d.DrawString(s)
}
