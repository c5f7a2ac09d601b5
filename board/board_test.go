package board

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alphaAt(b *Board, x, y int) uint8 {
	return b.Image().RGBAAt(x, y).A
}

func TestParseTool(t *testing.T) {
	examples := []struct {
		Name string
		Tool Tool
	}{
		{"pen", Pen},
		{"line", Line},
		{"RECT", Rect},
		{"eraser", Eraser},
	}
	for _, ex := range examples {
		tool, err := ParseTool(ex.Name)
		require.NoError(t, err)
		assert.Equal(t, ex.Tool, tool)
	}
	_, err := ParseTool("spray")
	assert.Error(t, err)
	assert.Equal(t, "rect", Rect.String())
	assert.Equal(t, "unknown", Tool(9).String())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)

	_, err = ParseColor("#fff")
	assert.Error(t, err)
	_, err = ParseColor("#gggggg")
	assert.Error(t, err)
}

func TestSetWidthLimits(t *testing.T) {
	b := New(10, 10)
	b.SetWidth(0.2)
	assert.Equal(t, 1.0, b.Width())
	b.SetWidth(6)
	assert.Equal(t, 6.0, b.Width())
	b.SetWidth(1e300)
	assert.Equal(t, float64(MAX_WIDTH), b.Width())
	b.SetWidth(math.NaN())
	assert.Equal(t, 1.0, b.Width())
}

func TestInReach(t *testing.T) {
	b := New(100, 100)
	assert.True(t, b.InReach(geom.Coord{X: 0, Y: 0}))
	assert.True(t, b.InReach(geom.Coord{X: -REACH, Y: 100 + REACH}))
	assert.False(t, b.InReach(geom.Coord{X: -REACH - 1, Y: 50}))
	assert.False(t, b.InReach(geom.Coord{X: 50, Y: 1e300}))
	assert.False(t, b.InReach(geom.Coord{X: math.NaN(), Y: 50}))
}

func TestFarPointsArePinned(t *testing.T) {
	start := time.Now()

	b := New(100, 100)
	b.SetTool(Line)
	b.SetWidth(4)
	b.PointerDown(geom.Coord{X: 10, Y: 50})
	b.PointerUp(geom.Coord{X: 1e300, Y: 50})
	// the line runs to the pinned end, past the right edge
	assert.Equal(t, uint8(0xff), alphaAt(b, 99, 50))

	far := geom.Coord{X: 1e300, Y: -1e300}
	for _, tool := range []Tool{Pen, Rect, Eraser} {
		b.SetTool(tool)
		b.PointerDown(geom.Coord{X: -1e300, Y: 1e300})
		b.PointerMove(far)
		b.PointerUp(far)
		assert.False(t, b.Drawing())
	}
	assert.Less(t, time.Since(start), 5*time.Second)

	b.Clear()
	b.SetTool(Pen)
	b.PointerDown(geom.Coord{X: math.NaN(), Y: 5})
	assert.False(t, b.Drawing())
	assert.Equal(t, uint8(0), alphaAt(b, 0, 5))
}

func TestPenStroke(t *testing.T) {
	b := New(100, 100)
	b.SetColor(color.RGBA{R: 0xff, A: 0xff})
	b.SetWidth(4)

	assert.Equal(t, uint8(0), alphaAt(b, 50, 20))
	b.PointerDown(geom.Coord{X: 10, Y: 20})
	b.PointerMove(geom.Coord{X: 50, Y: 20})
	b.PointerMove(geom.Coord{X: 90, Y: 20})
	b.PointerUp(geom.Coord{X: 90, Y: 20})

	assert.Equal(t, uint8(0xff), alphaAt(b, 50, 20))
	assert.Equal(t, uint8(0xff), b.Image().RGBAAt(50, 20).R)
	assert.Equal(t, uint8(0), alphaAt(b, 50, 60))
	assert.False(t, b.Drawing())
}

func TestMoveWithoutDownDoesNothing(t *testing.T) {
	b := New(100, 100)
	b.PointerMove(geom.Coord{X: 10, Y: 10})
	b.PointerMove(geom.Coord{X: 90, Y: 90})
	assert.Equal(t, uint8(0), alphaAt(b, 50, 50))
}

func TestLineOnlyOnUp(t *testing.T) {
	b := New(100, 100)
	b.SetTool(Line)
	b.SetWidth(4)

	b.PointerDown(geom.Coord{X: 10, Y: 50})
	b.PointerMove(geom.Coord{X: 60, Y: 50})
	assert.Equal(t, uint8(0), alphaAt(b, 40, 50))

	b.PointerUp(geom.Coord{X: 90, Y: 50})
	assert.Equal(t, uint8(0xff), alphaAt(b, 40, 50))
}

func TestRectOutline(t *testing.T) {
	b := New(100, 100)
	b.SetTool(Rect)
	b.SetWidth(4)

	b.PointerDown(geom.Coord{X: 20, Y: 20})
	b.PointerUp(geom.Coord{X: 80, Y: 70})

	assert.Equal(t, uint8(0xff), alphaAt(b, 50, 20)) // top edge
	assert.Equal(t, uint8(0xff), alphaAt(b, 50, 70)) // bottom edge
	assert.Equal(t, uint8(0xff), alphaAt(b, 20, 45)) // left edge
	assert.Equal(t, uint8(0xff), alphaAt(b, 80, 45)) // right edge
	assert.Equal(t, uint8(0), alphaAt(b, 50, 45))    // hollow
}

func TestEraser(t *testing.T) {
	b := New(100, 100)
	b.SetWidth(10)
	b.PointerDown(geom.Coord{X: 0, Y: 50})
	b.PointerMove(geom.Coord{X: 100, Y: 50})
	b.PointerUp(geom.Coord{X: 100, Y: 50})
	require.Equal(t, uint8(0xff), alphaAt(b, 50, 50))

	b.SetTool(Eraser)
	b.PointerDown(geom.Coord{X: 50, Y: 50})
	b.PointerUp(geom.Coord{X: 50, Y: 50})

	assert.Equal(t, uint8(0), alphaAt(b, 50, 50))
	assert.Equal(t, uint8(0), alphaAt(b, 41, 50))
	// outside the 20x20 patch the stroke survives
	assert.Equal(t, uint8(0xff), alphaAt(b, 30, 50))
}

func TestClear(t *testing.T) {
	b := New(50, 50)
	b.SetWidth(6)
	b.PointerDown(geom.Coord{X: 5, Y: 25})
	b.PointerMove(geom.Coord{X: 45, Y: 25})
	b.Clear()
	assert.Equal(t, uint8(0), alphaAt(b, 25, 25))
	assert.False(t, b.Drawing())
}
