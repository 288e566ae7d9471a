package frame

import (
	"fmt"
	"math"
	"strconv"
)

// ParseInt parses an integer payload. The accepted grammar is
// -?[1-9][0-9]*|0: no leading zeros, no "-0", no '+', no blanks.
// Values outside int64 are an error, never wrapped.
func ParseInt(d []byte) (int64, error) {
	i := 0
	neg := false
	if i < len(d) && d[i] == '-' {
		neg = true
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 || i+digits != len(d) {
		return 0, fmt.Errorf("%w %q", ErrInt, d)
	}
	if d[i] == '0' && (neg || digits > 1) {
		return 0, fmt.Errorf("%w: leading zero in %q", ErrInt, d)
	}
	v, err := strconv.ParseInt(string(d), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of int64 range", ErrInt, d)
	}
	return v, nil
}

// ParseFloat parses a float payload with the grammar
// -?digits(.digits)?([eE][+-]?digits)?. Values whose magnitude
// overflows float64 are an error; NaN and infinities have no text form.
func ParseFloat(d []byte) (float64, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0, fmt.Errorf("%w %q", ErrFloat, d)
	}
	i += n
	i += fract(d[i:])
	i += exp(d[i:])
	if i != len(d) {
		return 0, fmt.Errorf("%w %q", ErrFloat, d)
	}
	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of float64 range", ErrFloat, d)
	}
	return f, nil
}

// FormatInt renders the canonical integer payload text.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders the shortest payload text that re-parses to the
// identical float64. NaN and infinities are not representable.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v has no wire form", ErrFloat, f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// fract returns the length of a .digits fraction at the head of d,
// or 0 if d does not start with one.
func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

// exp returns the length of an [eE][+-]?digits exponent at the head of
// d, or 0 if d does not start with one.
func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
