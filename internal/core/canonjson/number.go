package canonjson

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders f the way ECMAScript Number::toString does, which is
// what RFC 8785 requires: the shortest decimal that round-trips to the same
// float64, plain notation for magnitudes in [1e-6, 1e21), exponent notation
// with a lowercase e, an explicit sign, and no zero-padded exponent
// otherwise. Negative zero renders as "0".
func formatNumber(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrInvalidNumber
	}
	if f == 0 {
		return "0", nil
	}
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	format := byte('e')
	if f < 1e21 && f >= 1e-6 {
		format = 'f'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		// Go pads single-digit exponents to two ("1e+09"); ES does not.
		mant := s[:i+1]
		exp := s[i+1:]
		s = mant + string(exp[0]) + strings.TrimLeft(exp[1:], "0")
	}
	return sign + s, nil
}
