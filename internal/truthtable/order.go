package truthtable

import (
	"slices"
	"strings"
)

// SortVariables returns the distinct names in natural order.
//
// Names are split into digit and non-digit runs. Non-digit runs compare by
// code point, so the order is case-sensitive with upper case first. Digit
// runs compare by numeric value, so A2 sorts before A10. Equal numeric
// values with different zero padding fall back to the shorter run first.
func SortVariables(names ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range names {
		for _, n := range list {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	slices.SortFunc(out, NaturalCompare)
	return out
}

// NaturalCompare orders a and b as described on SortVariables.
func NaturalCompare(a, b string) int {
	for a != "" && b != "" {
		ca, restA := nextChunk(a)
		cb, restB := nextChunk(b)

		if isDigit(ca[0]) && isDigit(cb[0]) {
			if c := compareNumeric(ca, cb); c != 0 {
				return c
			}
		} else if c := strings.Compare(ca, cb); c != 0 {
			return c
		}
		a, b = restA, restB
	}
	return len(a) - len(b)
}

func nextChunk(s string) (string, string) {
	digit := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:]
}

func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		return len(ta) - len(tb)
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return len(a) - len(b)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
