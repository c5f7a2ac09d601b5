package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

const FLOAT_EQUAL_THRESH = 0.00000001

func floatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < FLOAT_EQUAL_THRESH
}

func almostEqualsCoord(a, b geom.Coord) bool {
	return floatAlmostEqual(a.X, b.X) && floatAlmostEqual(a.Y, b.Y)
}
