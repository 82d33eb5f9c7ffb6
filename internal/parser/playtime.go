package parser

import (
	"fmt"
	"math"
)

// FormatPlayTime renders seconds as "HHh MMm SSs".
//
// The total is rounded to the nearest second, halves to even, before it is
// split, so 7325.5 becomes "02h 02m 06s" and 2.5 becomes "00h 00m 02s". Negative and non-finite
// values render as zero. Hours widen past two digits as needed.
func FormatPlayTime(seconds float64) string {
	var total int64
	if !math.IsNaN(seconds) && !math.IsInf(seconds, 0) && seconds > 0 {
		r := math.RoundToEven(seconds)
		if r >= math.MaxInt64 {
			total = math.MaxInt64
		} else {
			total = int64(r)
		}
	}

	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	return fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
}
