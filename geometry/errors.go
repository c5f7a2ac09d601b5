package geometry

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidCount  = errors.New("invalid sector count")
	ErrOddCount      = errors.New("layout needs an even sector count")
	ErrCountTooSmall = errors.New("sector count must be at least 2")
	ErrShapeTooLarge = errors.New("shape too large to fit the canvas")
	ErrInvalidConfig = errors.New("invalid layout config")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidCount, "InvalidCount"},
	{ErrOddCount, "OddCount"},
	{ErrCountTooSmall, "CountTooSmall"},
	{ErrShapeTooLarge, "ShapeTooLarge"},
	{ErrInvalidConfig, "InvalidConfig"},
}

// Kind returns the stable name of a layout failure, or "" when err is
// not one of ours.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
