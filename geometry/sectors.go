package geometry

import (
	"math"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"
)

// Segment is a straight line between two points.
type Segment struct {
	From, To geom.Coord
}

func (s Segment) Length() float64 {
	return s.From.DistanceFrom(s.To)
}

// ArcSpan approximates a circular arc with a quadratic Bézier curve.
type ArcSpan struct {
	Start, Control, End geom.Coord
}

// At evaluates the curve at t in [0, 1].
func (a ArcSpan) At(t float64) geom.Coord {
	u := 1 - t
	return a.Start.Times(u * u).Plus(a.Control.Times(2 * u * t)).Plus(a.End.Times(t * t))
}

// Circle is the full circumference of the divided circle.
type Circle struct {
	Center geom.Coord
	Radius float64
}

// Radius is one dividing line from the center to the circumference.
type Radius struct {
	Index int
	Angle float64
	Segment
}

// SectorLayout is the circle divided into Count equal sectors.
type SectorLayout struct {
	Count         int
	AngleStep     float64
	Circumference Circle
	Radii         []Radius
	// Skipped holds the indices of radii dropped because their
	// coordinates were not finite.
	Skipped []int
}

// Degraded reports whether any radius had to be skipped.
func (sl SectorLayout) Degraded() bool {
	return len(sl.Skipped) > 0
}

// MAX_COUNT caps the sector count. At that count neighbouring radii are
// already a fraction of a pixel apart on the circumference.
const MAX_COUNT = 3600

// ComputeSectorLayout divides the configured circle into n sectors.
// n must be an integral value in [1, MAX_COUNT]. Radii whose endpoints
// come out NaN or infinite are skipped and reported in Skipped.
func ComputeSectorLayout(n float64, cfg Config) (SectorLayout, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 1 || n > MAX_COUNT || n != math.Trunc(n) {
		return SectorLayout{}, errors.Wrapf(ErrInvalidCount, "n=%v", n)
	}
	count := int(n)
	center := cfg.Center()
	angleStep := 2 * math.Pi / n

	sl := SectorLayout{
		Count:         count,
		AngleStep:     angleStep,
		Circumference: Circle{Center: center, Radius: cfg.CircleRadius},
		Radii:         make([]Radius, 0, count),
	}
	for i := 0; i < count; i++ {
		angle := float64(i) * angleStep
		end := geom.Coord{
			X: cfg.CenterX + cfg.CircleRadius*math.Cos(angle),
			Y: cfg.CenterY + cfg.CircleRadius*math.Sin(angle),
		}
		if !isFinite(angle) || !finiteCoord(center) || !finiteCoord(end) {
			sl.Skipped = append(sl.Skipped, i)
			continue
		}
		sl.Radii = append(sl.Radii, Radius{
			Index:   i,
			Angle:   angle,
			Segment: Segment{From: center, To: end},
		})
	}
	return sl, nil
}
