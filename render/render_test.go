package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"circle-sectors/geometry"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGSectors(t *testing.T) {
	cfg := geometry.DefaultConfig()
	sl, err := geometry.ComputeSectorLayout(16, cfg)
	require.NoError(t, err)

	svg := NewSVG(cfg.Canvas())
	PaintSectors(svg, sl)

	var buf bytes.Buffer
	_, err = svg.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 16, strings.Count(out, "<line "))
	assert.Equal(t, 1, strings.Count(out, "<circle "))
	assert.Contains(t, out, `viewBox="0.000000 0.000000 600.000000 400.000000"`)
	assert.Contains(t, out, "stroke: #0000ff; stroke-width: 2")
	assert.Contains(t, out, "stroke: #0000ff; stroke-width: 1")
}

func TestSVGRearranged(t *testing.T) {
	cfg := geometry.DefaultConfig()
	rs, err := geometry.ComputeRearrangedLayout(8, cfg)
	require.NoError(t, err)

	svg := NewSVG(cfg.Canvas())
	PaintRearranged(svg, rs)

	var buf bytes.Buffer
	_, err = svg.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	// two edges per sector plus the closing edge
	assert.Equal(t, 2*4+1, strings.Count(out, "<line "))
	// top and bottom arc per sector
	assert.Equal(t, 2*4, strings.Count(out, " Q"))
	// one clipped fill contour
	assert.Equal(t, 1, strings.Count(out, "stroke: none"))
	assert.Equal(t, 3, strings.Count(out, "<text "))
	assert.Contains(t, out, "πr²")
}

func TestSVGClearAndEscape(t *testing.T) {
	svg := NewSVG(geom.Rect{Max: geom.Coord{X: 10, Y: 10}})
	svg.Line(geom.Coord{}, geom.Coord{X: 5, Y: 5}, Stroke{Color: ColorRadius, Width: 1})
	svg.Clear()
	svg.Text("a<b & c", geom.Coord{X: 5, Y: 5}, 10, ColorText)

	var buf bytes.Buffer
	_, err := svg.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.NotContains(t, out, "<line ")
	assert.Contains(t, out, "a&lt;b &amp; c")
}

func TestRasterSectors(t *testing.T) {
	cfg := geometry.DefaultConfig()
	sl, err := geometry.ComputeSectorLayout(16, cfg)
	require.NoError(t, err)

	r := NewRaster(int(cfg.CanvasWidth), int(cfg.CanvasHeight), ColorBackground)
	PaintSectors(r, sl)
	img := r.Image()

	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	// on radius 0, which runs right from the center along y=150
	c := img.RGBAAt(350, 149)
	assert.Greater(t, c.B, uint8(200))
	assert.Less(t, c.R, uint8(60))

	// top of the circumference, clear of the round cap on the vertical radius
	c = img.RGBAAt(303, 49)
	assert.Greater(t, c.R, uint8(200))
	assert.Less(t, c.B, uint8(60))

	// untouched corner stays white
	assert.Equal(t, ColorBackground, img.RGBAAt(5, 5))
}

func TestRasterRearrangedFill(t *testing.T) {
	cfg := geometry.DefaultConfig()
	rs, err := geometry.ComputeRearrangedLayout(16, cfg)
	require.NoError(t, err)

	r := NewRaster(int(cfg.CanvasWidth), int(cfg.CanvasHeight), ColorBackground)
	PaintRearranged(r, rs)
	img := r.Image()

	// inside sector 4, halfway down, clear of its edges
	x := int(rs.StartX + 4.5*rs.ArcLength)
	y := int((rs.TopBaseY + rs.TipY) / 2)
	assertNearColor(t, ColorShapeFill, img.RGBAAt(x, y))

	// caption text leaves dark pixels somewhere on its first baseline row band
	dark := false
	cy := int(rs.Caption.Anchor.Y)
	for yy := cy - 12; yy <= cy && !dark; yy++ {
		for xx := 0; xx < img.Bounds().Dx(); xx++ {
			if img.RGBAAt(xx, yy).R < 100 {
				dark = true
				break
			}
		}
	}
	assert.True(t, dark)
}

func TestRasterLineCaps(t *testing.T) {
	r := NewRaster(40, 40, ColorBackground)
	st := Stroke{Color: ColorRadius, Width: 8}
	r.Line(geom.Coord{X: 10, Y: 20}, geom.Coord{X: 30, Y: 20}, st)
	r.QuadBezier(geom.Coord{X: 10, Y: 32}, geom.Coord{X: 20, Y: 32}, geom.Coord{X: 30, Y: 32}, st)
	img := r.Image()

	// round caps reach half the width past each end
	assertNearColor(t, ColorRadius, img.RGBAAt(7, 20))
	assertNearColor(t, ColorRadius, img.RGBAAt(32, 20))
	assertNearColor(t, ColorRadius, img.RGBAAt(7, 32))
	assert.Equal(t, ColorBackground, img.RGBAAt(2, 20))
}

func TestRasterFaceCache(t *testing.T) {
	r := NewRaster(10, 10, ColorBackground)
	f := r.face(TEXT_SIZE)
	require.NotNil(t, f)
	assert.Equal(t, f, r.face(TEXT_SIZE))
	assert.Len(t, r.faces, 1)
}

func TestRasterClearAndErase(t *testing.T) {
	r := NewRaster(40, 40, ColorBackground)
	r.Line(geom.Coord{X: 0, Y: 20}, geom.Coord{X: 40, Y: 20}, Stroke{Color: ColorRadius, Width: 4})
	assertNearColor(t, ColorRadius, r.Image().RGBAAt(10, 20))

	r.Clear()
	assert.Equal(t, ColorBackground, r.Image().RGBAAt(10, 20))

	r.Line(geom.Coord{X: 0, Y: 20}, geom.Coord{X: 40, Y: 20}, Stroke{Color: ColorRadius, Width: 4})
	r.Erase(r.Image().Bounds())
	assert.Equal(t, uint8(0), r.Image().RGBAAt(10, 20).A)
}

func assertNearColor(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 2, "R")
	assert.InDelta(t, want.G, got.G, 2, "G")
	assert.InDelta(t, want.B, got.B, 2, "B")
	assert.InDelta(t, want.A, got.A, 2, "A")
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Hex(ColorCircumference))
	assert.Equal(t, "#0000ff", Hex(ColorRadius))
	assert.Equal(t, "#e8f0ff", Hex(ColorShapeFill))
}
