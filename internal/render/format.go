package render

import (
	"fmt"
	"strconv"
)

// FormatNumber abbreviates large values with K/M suffixes, one decimal
// place. Applied uniformly to every numeric stat drawn on the card.
func FormatNumber(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return strconv.Itoa(n)
	}
}

// fmtFloat prints a coordinate rounded to two decimals with no trailing
// zeros so serialized scenes are byte-stable and compact.
func fmtFloat(v float64) string {
	rounded := float64(int64(v*100+copysignHalf(v))) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func copysignHalf(v float64) float64 {
	if v < 0 {
		return -0.5
	}
	return 0.5
}
