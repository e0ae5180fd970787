package compare

import (
	"fmt"
	"strings"
)

// formatNumber renders v with a fixed number of decimals and comma-grouped
// thousands, independent of locale. Used for every number the narrative
// emits so output is byte-reproducible.
func formatNumber(v float64, digits int) string {
	s := fmt.Sprintf("%.*f", digits, v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	out := intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// formatSigned is formatNumber with an explicit leading sign; zero takes "+".
func formatSigned(v float64, digits int) string {
	if v < 0 {
		return formatNumber(v, digits)
	}
	return "+" + formatNumber(v, digits)
}
