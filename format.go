package shape

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders v the way path data and transform lists are written by this
// package: rounded to 10 decimal places, shortest representation, no exponent and no
// negative zero.
func formatNumber(v float64) string {
	if r := math.Round(v*1e10) / 1e10; !math.IsInf(r, 0) && !math.IsNaN(r) {
		v = r
	}
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPair(x, y float64) string {
	return formatNumber(x) + "," + formatNumber(y)
}

func formatNumbers(vs ...float64) string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatNumber(v))
	}
	return sb.String()
}
