// Package geometry computes the divided circle and its rearranged
// "unrolled" layout. Everything here is a pure function of the sector
// count and a Config; painting is left to the render package.
package geometry

import (
	"math"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"
)

// Config is the fixed canvas and circle geometry the layouts are
// computed against.
type Config struct {
	CanvasWidth  float64 `json:"canvasWidth"`
	CanvasHeight float64 `json:"canvasHeight"`
	CircleRadius float64 `json:"circleRadius"`
	Padding      float64 `json:"padding"`
	CenterX      float64 `json:"centerX"`
	CenterY      float64 `json:"centerY"`
	CurveFactor  float64 `json:"curveFactor"`
}

const (
	DEFAULT_CANVAS_WIDTH  = 600
	DEFAULT_CANVAS_HEIGHT = 400
	DEFAULT_CIRCLE_RADIUS = 100
	DEFAULT_PADDING       = 30
	DEFAULT_CURVE_FACTOR  = 0.3
)

// DefaultConfig returns the 600x400 canvas with a radius 100 circle.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:  DEFAULT_CANVAS_WIDTH,
		CanvasHeight: DEFAULT_CANVAS_HEIGHT,
		CircleRadius: DEFAULT_CIRCLE_RADIUS,
		Padding:      DEFAULT_PADDING,
		CenterX:      DEFAULT_CANVAS_WIDTH / 2,
		CenterY:      DEFAULT_CIRCLE_RADIUS + DEFAULT_PADDING + 20,
		CurveFactor:  DEFAULT_CURVE_FACTOR,
	}
}

func (c Config) Center() geom.Coord {
	return geom.Coord{X: c.CenterX, Y: c.CenterY}
}

// Canvas is the full drawing area.
func (c Config) Canvas() geom.Rect {
	return geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: c.CanvasWidth, Y: c.CanvasHeight}}
}

// Validate rejects configs no layout can be computed against.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"canvasWidth", c.CanvasWidth},
		{"canvasHeight", c.CanvasHeight},
		{"circleRadius", c.CircleRadius},
		{"padding", c.Padding},
		{"centerX", c.CenterX},
		{"centerY", c.CenterY},
		{"curveFactor", c.CurveFactor},
	}
	for _, f := range fields {
		if !isFinite(f.v) {
			return errors.Wrapf(ErrInvalidConfig, "%s is not finite", f.name)
		}
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "canvas %gx%g", c.CanvasWidth, c.CanvasHeight)
	}
	if c.CircleRadius <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "circleRadius %g", c.CircleRadius)
	}
	if c.Padding < 0 {
		return errors.Wrapf(ErrInvalidConfig, "padding %g", c.Padding)
	}
	if c.CurveFactor < 0 {
		return errors.Wrapf(ErrInvalidConfig, "curveFactor %g", c.CurveFactor)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////
// Float helpers

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteCoord(c geom.Coord) bool {
	return isFinite(c.X) && isFinite(c.Y)
}
