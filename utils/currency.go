package utils

import (
	"fmt"
	"math"
)

// FormatPrice formats a menu price as a yen string with thousands
// separators. Example: 1250 -> "¥1,250".
func FormatPrice(amount float64) string {
	n := int64(math.Round(amount))
	negative := n < 0
	if negative {
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	out := ""
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(r)
	}

	if negative {
		return "-¥" + out
	}
	return "¥" + out
}
