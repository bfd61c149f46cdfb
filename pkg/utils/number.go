package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCompact abrevia contagens grandes: 950, 12.5K, 1.2M.
// Uma casa decimal, sem zero à direita (12000 vira 12K).
func FormatCompact(n int) string {
	switch {
	case n >= 1_000_000:
		return compact(n, 1_000_000) + "M"
	case n >= 1_000:
		return compact(n, 1_000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// compact trunca em décimos usando aritmética inteira
func compact(n, unit int) string {
	tenths := n / (unit / 10)
	whole, frac := tenths/10, tenths%10
	if frac == 0 {
		return strconv.Itoa(whole)
	}
	return strconv.Itoa(whole) + "." + strconv.Itoa(frac)
}
