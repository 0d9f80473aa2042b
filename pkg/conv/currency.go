package conv

import (
	"math"
	"strconv"
)

// FormatINR renders an amount as "₹1,234,567" with the fraction rounded
// away. Negative amounts keep the sign in front of the currency symbol.
func FormatINR(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))

	s := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-₹" + string(out)
	}
	return "₹" + string(out)
}
