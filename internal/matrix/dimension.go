package matrix

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultDimension is the row/column count used when the user leaves a
// dimension blank or types something that is not a number.
const DefaultDimension = 3

// ResolveDimension turns raw user input into a positive dimension. Input that
// parses as an integer is clamped to at least 1; anything else yields def.
// Integers too large for int saturate to math.MaxInt, too small ones to 1.
func ResolveDimension(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if n > 0 {
				return math.MaxInt
			}
			return 1
		}
		return def
	}
	return max(1, n)
}

// ResolveDims resolves a rows/cols pair against the same default.
func ResolveDims(rows, cols string, def int) Dims {
	return Dims{
		Rows: ResolveDimension(rows, def),
		Cols: ResolveDimension(cols, def),
	}
}
