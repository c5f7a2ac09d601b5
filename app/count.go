package app

import (
	"strconv"
	"strings"

	"circle-sectors/geometry"

	"github.com/pkg/errors"
)

// ParseCount reads the leading integer of a textbox value, so "12 slices"
// is 12. Leading blanks and a sign are allowed.
func ParseCount(input string) (int, bool) {
	s := strings.TrimLeft(input, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NormalizeDrawCount is the count used by the draw action: anything
// unparsable or below 4 becomes 4, and counts above geometry.MAX_COUNT
// are capped.
func NormalizeDrawCount(input string) int {
	n, ok := ParseCount(input)
	if !ok || n < MIN_DRAW {
		return MIN_DRAW
	}
	if n > geometry.MAX_COUNT {
		return geometry.MAX_COUNT
	}
	return n
}

// NormalizeRearrangeCount is the count used by the rearrange action:
// counts above geometry.MAX_COUNT are capped, an odd count is rounded up
// to the next even one, then anything below 2 becomes 2. adjusted
// reports the odd-count rounding.
func NormalizeRearrangeCount(input string) (n int, adjusted bool, err error) {
	n, ok := ParseCount(input)
	if !ok {
		return 0, false, errors.Wrapf(geometry.ErrInvalidCount, "input %q", input)
	}
	if n > geometry.MAX_COUNT {
		n = geometry.MAX_COUNT
	}
	if n%2 != 0 {
		n++
		adjusted = true
	}
	if n < MIN_REARRANGE {
		n = MIN_REARRANGE
	}
	return n, adjusted, nil
}
