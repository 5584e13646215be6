// Package float formats floating point numbers the way PDF content
// streams and object bodies require: fixed-point, no exponent, shortest
// representation for the requested number of fractional digits.
package float

import (
	"strconv"
	"strings"
)

// Format renders x with at most digits fractional digits, stripping
// trailing zeros (and a now-empty decimal point), and dropping the
// leading "0" of a positive fraction less than one (so 0.5 becomes
// ".5", matching the compact form PDF viewers expect in content
// streams).
func Format(x float64, digits int) string {
	s := strconv.FormatFloat(x, 'f', digits, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if strings.HasPrefix(s, "0.") {
		s = s[1:]
	}
	return s
}

// Round rounds x to the precision that Format(x, digits) would produce.
func Round(x float64, digits int) float64 {
	v, err := strconv.ParseFloat(Format(x, digits), 64)
	if err != nil {
		return x
	}
	return v
}
