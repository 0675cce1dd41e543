package util

import "math"

// PercentOf returns round(100 * part / total), or 0 when total is 0.
func PercentOf(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Round2 rounds to two decimal places, the precision quiz statistics
// are reported with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
