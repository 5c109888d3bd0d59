package render

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatCount renders a whole number of points with thousands separators
func FormatCount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "?"
	}
	v = math.Floor(v)
	// Beyond int64 precision the digits are noise anyway
	if math.Abs(v) >= 1e15 {
		return strconv.FormatFloat(v, 'e', 3, 64)
	}
	return humanize.Comma(int64(v))
}

// FormatRate renders a per-second rate with one decimal
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
