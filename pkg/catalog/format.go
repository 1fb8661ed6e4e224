package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber renders a number with thousands separators, the way the
// storefront prints prices and mileage (e.g. 500000 -> "500,000").
func FormatNumber(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatFloat(n, 'f', -1, 64)
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPrice renders a price with its currency prefix (e.g. "L.E500,000").
func FormatPrice(price float64, currency string) string {
	return fmt.Sprintf("%s%s", currency, FormatNumber(price))
}
