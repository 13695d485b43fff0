package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatUSD renders a price with two decimals and thousands separators.
// Sub-cent prices keep enough precision to stay meaningful.
func FormatUSD(value float64) string {
	if value != 0 && math.Abs(value) < 0.01 {
		return "$" + strconv.FormatFloat(value, 'f', 6, 64)
	}
	return "$" + groupThousands(fmt.Sprintf("%.2f", value))
}

// FormatCompactUSD renders large amounts with a T/B/M suffix, used for
// market caps and volumes where full precision is noise.
func FormatCompactUSD(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("$%.2fT", value/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", value/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", value/1e6)
	default:
		return FormatUSD(value)
	}
}

// FormatPercent renders a signed percentage with two decimals.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%+.2f%%", value)
}

// FormatSupply renders a circulating supply as a grouped whole number.
func FormatSupply(value float64) string {
	return groupThousands(strconv.FormatFloat(math.Trunc(value), 'f', 0, 64))
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
