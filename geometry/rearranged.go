package geometry

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"
)

// Vertical room kept free above the shape, and below it for the caption.
const (
	TOP_MARGIN     = 50
	CAPTION_MARGIN = 50
)

// SectorPiece is one triangle of the rearranged row together with its
// two curved edges.
type SectorPiece struct {
	Index     int
	BaseLeft  geom.Coord
	BaseRight geom.Coord
	Tip       geom.Coord
	LeftEdge  Segment
	RightEdge Segment
	// Top bulges upward from the base line, Bottom bulges downward from
	// the tip line and is shifted right by ShiftX.
	Top    ArcSpan
	Bottom ArcSpan
}

// Caption is where and what to print under the rearranged shape.
type Caption struct {
	Anchor  geom.Coord
	Size    float64
	Lines   []string
	Compact bool
}

// AreaFigures are the approximate and exact areas shown with the shape.
type AreaFigures struct {
	ApproxBase   float64
	ApproxHeight float64
	ApproxArea   float64
	ActualArea   float64
}

// RearrangedShape is the divided circle laid out as a sheared, curved
// parallelogram.
type RearrangedShape struct {
	N               int
	ArcLength       float64
	NumSectors      int
	TotalBaseLength float64
	ShapeHeight     float64
	ShiftX          float64
	VisualWidth     float64
	StartX          float64
	TopBaseY        float64
	TipY            float64
	CurveBulge      float64
	// Bounds is the checked extent including the arc bulges.
	Bounds  geom.Rect
	// Canvas is the drawing area the shape was laid out on.
	Canvas  geom.Rect
	Sectors []SectorPiece
	Closing Segment
	Caption Caption
	Area    AreaFigures
}

// ComputeRearrangedLayout lays n sectors out as n/2 triangles standing
// on a curved base. n must be even, at least 2 and at most MAX_COUNT;
// rounding an odd count
// is the caller's job. The bounds check runs before any geometry is
// built, so a failing shape yields nothing.
func ComputeRearrangedLayout(n int, cfg Config) (RearrangedShape, error) {
	if n%2 != 0 {
		return RearrangedShape{}, errors.Wrapf(ErrOddCount, "n=%d", n)
	}
	if n < 2 {
		return RearrangedShape{}, errors.Wrapf(ErrCountTooSmall, "n=%d", n)
	}
	if n > MAX_COUNT {
		return RearrangedShape{}, errors.Wrapf(ErrShapeTooLarge, "n=%d is more than %d sectors", n, MAX_COUNT)
	}

	r := cfg.CircleRadius
	angleStepRad := 2 * math.Pi / float64(n)
	arcLength := r * angleStepRad
	numSectors := n / 2
	totalBaseLength := arcLength * float64(numSectors)
	shapeHeight := r
	shiftX := arcLength / 2

	topBaseY := cfg.Padding + TOP_MARGIN
	tipY := topBaseY + shapeHeight
	visualWidth := totalBaseLength + shiftX
	startX := (cfg.CanvasWidth - visualWidth) / 2
	curveBulge := arcLength * cfg.CurveFactor

	leftBound := startX
	rightBound := startX + visualWidth
	topBound := topBaseY - curveBulge
	bottomBound := tipY + curveBulge
	if leftBound < cfg.Padding || rightBound > cfg.CanvasWidth-cfg.Padding ||
		topBound < cfg.Padding || bottomBound > cfg.CanvasHeight-cfg.Padding-CAPTION_MARGIN {
		return RearrangedShape{}, errors.Wrapf(ErrShapeTooLarge,
			"n=%d extent [%.2f,%.2f]x[%.2f,%.2f]", n, leftBound, rightBound, topBound, bottomBound)
	}

	rs := RearrangedShape{
		N:               n,
		ArcLength:       arcLength,
		NumSectors:      numSectors,
		TotalBaseLength: totalBaseLength,
		ShapeHeight:     shapeHeight,
		ShiftX:          shiftX,
		VisualWidth:     visualWidth,
		StartX:          startX,
		TopBaseY:        topBaseY,
		TipY:            tipY,
		CurveBulge:      curveBulge,
		Bounds: geom.Rect{
			Min: geom.Coord{X: leftBound, Y: topBound},
			Max: geom.Coord{X: rightBound, Y: bottomBound},
		},
		Canvas:  cfg.Canvas(),
		Sectors: make([]SectorPiece, numSectors),
	}

	for i := 0; i < numSectors; i++ {
		baseLeftX := startX + float64(i)*arcLength
		baseRightX := startX + float64(i+1)*arcLength
		tipX := startX + (float64(i)+0.5)*arcLength

		baseLeft := geom.Coord{X: baseLeftX, Y: topBaseY}
		baseRight := geom.Coord{X: baseRightX, Y: topBaseY}
		tip := geom.Coord{X: tipX, Y: tipY}
		midTop := (baseLeftX + baseRightX) / 2
		midBottom := (baseLeftX + shiftX + baseRightX + shiftX) / 2

		rs.Sectors[i] = SectorPiece{
			Index:     i,
			BaseLeft:  baseLeft,
			BaseRight: baseRight,
			Tip:       tip,
			LeftEdge:  Segment{From: baseLeft, To: tip},
			RightEdge: Segment{From: tip, To: baseRight},
			Top: ArcSpan{
				Start:   baseLeft,
				Control: geom.Coord{X: midTop, Y: topBaseY - curveBulge},
				End:     baseRight,
			},
			Bottom: ArcSpan{
				Start:   geom.Coord{X: baseLeftX + shiftX, Y: tipY},
				Control: geom.Coord{X: midBottom, Y: tipY + curveBulge},
				End:     geom.Coord{X: baseRightX + shiftX, Y: tipY},
			},
		}
	}

	rightTopX := startX + totalBaseLength
	rs.Closing = Segment{
		From: geom.Coord{X: rightTopX, Y: topBaseY},
		To:   geom.Coord{X: rightTopX + shiftX, Y: tipY},
	}

	rs.Area = areaFigures(r)
	rs.Caption = caption(n, cfg, bottomBound, rs.Area)
	return rs, nil
}

func areaFigures(r float64) AreaFigures {
	approxBase := math.Pi * r
	return AreaFigures{
		ApproxBase:   approxBase,
		ApproxHeight: r,
		ApproxArea:   approxBase * r,
		ActualArea:   math.Pi * r * r,
	}
}

const (
	CAPTION_SIZE         = 14
	CAPTION_COMPACT_SIZE = 12
	CAPTION_LINE_HEIGHT  = 20
)

// caption places the explanatory text below the shape, falling back to
// a single short line at the bottom edge when three lines do not fit.
func caption(n int, cfg Config, bottomBound float64, a AreaFigures) Caption {
	textY := bottomBound + cfg.Padding + 5
	if textY+2*CAPTION_LINE_HEIGHT+5 < cfg.CanvasHeight {
		return Caption{
			Anchor: geom.Coord{X: cfg.CanvasWidth / 2, Y: textY},
			Size:   CAPTION_SIZE,
			Lines: []string{
				fmt.Sprintf("Rearranged (n=%d) - parallelogram layout", n),
				fmt.Sprintf("Approx. parallelogram: base ≈ πr (%.1f), height ≈ r (%g)", a.ApproxBase, a.ApproxHeight),
				fmt.Sprintf("Area ≈ base × height ≈ %.1f (actual πr² ≈ %.1f)", a.ApproxArea, a.ActualArea),
			},
		}
	}
	return Caption{
		Anchor:  geom.Coord{X: cfg.CanvasWidth / 2, Y: cfg.CanvasHeight - 10},
		Size:    CAPTION_COMPACT_SIZE,
		Lines:   []string{fmt.Sprintf("n=%d, Area ≈ %.1f", n, a.ApproxArea)},
		Compact: true,
	}
}
