// Package board is a freehand drawing layer: pen strokes, straight
// lines, rectangle outlines and an eraser, driven by pointer events.
package board

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"circle-sectors/render"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"
)

type Tool int

const (
	Pen Tool = iota
	Line
	Rect
	Eraser
)

var toolNames = []string{"pen", "line", "rect", "eraser"}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return "unknown"
	}
	return toolNames[t]
}

func ParseTool(s string) (Tool, error) {
	for i, name := range toolNames {
		if strings.EqualFold(s, name) {
			return Tool(i), nil
		}
	}
	return Pen, errors.Errorf("unknown tool %q", s)
}

// ParseColor reads a "#rrggbb" color picker value.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, errors.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "bad color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ERASER_SIZE is the side of the square patch the eraser clears.
const ERASER_SIZE = 20

// REACH is how far past the edges a pointer may go; further out it is
// pinned to that margin.
const REACH = 50

// MAX_WIDTH caps the stroke width.
const MAX_WIDTH = 100

// Board is a transparent paint layer meant to sit over the figure.
type Board struct {
	surface *render.Raster
	tool    Tool
	color   color.RGBA
	width   float64
	anchor  geom.Coord
	last    geom.Coord
	drawing bool
}

func New(w, h int) *Board {
	return &Board{
		surface: render.NewRaster(w, h, color.RGBA{}),
		tool:    Pen,
		color:   color.RGBA{A: 0xff},
		width:   2,
	}
}

func (b *Board) Tool() Tool         { return b.tool }
func (b *Board) Color() color.RGBA  { return b.color }
func (b *Board) Width() float64     { return b.width }
func (b *Board) Drawing() bool      { return b.drawing }
func (b *Board) Image() *image.RGBA { return b.surface.Image() }

func (b *Board) SetTool(t Tool) {
	b.tool = t
}

func (b *Board) SetColor(c color.RGBA) {
	b.color = c
}

// SetWidth sets the stroke width, kept within [1, MAX_WIDTH].
func (b *Board) SetWidth(w float64) {
	if !(w >= 1) {
		w = 1
	}
	if w > MAX_WIDTH {
		w = MAX_WIDTH
	}
	b.width = w
}

// InReach reports whether p is on the board or within REACH of it.
func (b *Board) InReach(p geom.Coord) bool {
	r := b.surface.Image().Bounds()
	return p.X >= -REACH && p.X <= float64(r.Dx())+REACH &&
		p.Y >= -REACH && p.Y <= float64(r.Dy())+REACH
}

// pin moves p inside the reach of the board. NaN points are refused.
func (b *Board) pin(p geom.Coord) (geom.Coord, bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return p, false
	}
	r := b.surface.Image().Bounds()
	p.X = math.Max(-REACH, math.Min(p.X, float64(r.Dx())+REACH))
	p.Y = math.Max(-REACH, math.Min(p.Y, float64(r.Dy())+REACH))
	return p, true
}

func (b *Board) Clear() {
	b.surface.Clear()
	b.drawing = false
}

func (b *Board) stroke() render.Stroke {
	return render.Stroke{Color: b.color, Width: b.width}
}

func (b *Board) PointerDown(p geom.Coord) {
	p, ok := b.pin(p)
	if !ok {
		return
	}
	b.anchor = p
	b.last = p
	b.drawing = true
	switch b.tool {
	case Pen:
		b.surface.StrokeRound(p, p, b.stroke())
	case Eraser:
		b.erase(p)
	}
}

func (b *Board) PointerMove(p geom.Coord) {
	p, ok := b.pin(p)
	if !b.drawing || !ok {
		return
	}
	switch b.tool {
	case Pen:
		b.surface.StrokeRound(b.last, p, b.stroke())
	case Eraser:
		b.erase(p)
	}
	b.last = p
}

// PointerUp finishes the gesture. Lines and rectangles are only drawn
// here, from the anchor to p.
func (b *Board) PointerUp(p geom.Coord) {
	if !b.drawing {
		return
	}
	b.drawing = false
	p, ok := b.pin(p)
	if !ok {
		return
	}
	switch b.tool {
	case Line:
		b.surface.StrokeRound(b.anchor, p, b.stroke())
	case Rect:
		a := b.anchor
		corners := []geom.Coord{
			a,
			{X: p.X, Y: a.Y},
			p,
			{X: a.X, Y: p.Y},
		}
		for i := range corners {
			b.surface.StrokeRound(corners[i], corners[(i+1)%len(corners)], b.stroke())
		}
	case Pen:
		b.surface.StrokeRound(b.last, p, b.stroke())
	}
}

func (b *Board) erase(p geom.Coord) {
	half := ERASER_SIZE / 2
	x, y := int(p.X), int(p.Y)
	b.surface.Erase(image.Rect(x-half, y-half, x+half, y+half))
}
