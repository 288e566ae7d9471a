package frame

import (
	"math"
	"testing"
)

func TestParseInt(t *testing.T) {
	ok := map[string]int64{
		"0":                    0,
		"1":                    1,
		"-1":                   -1,
		"42":                   42,
		"9223372036854775807":  math.MaxInt64,
		"-9223372036854775808": math.MinInt64,
	}
	for in, want := range ok {
		got, err := ParseInt([]byte(in))
		if err != nil {
			t.Errorf("%q: %s", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %d, want %d", in, got, want)
		}
	}
	bad := []string{
		"", "-", "-0", "00", "01", "-01", "+1", " 1", "1 ", "1.0", "1e3", "abc",
		"9223372036854775808", "-9223372036854775809",
	}
	for _, in := range bad {
		if _, err := ParseInt([]byte(in)); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestParseFloat(t *testing.T) {
	ok := map[string]float64{
		"0":       0,
		"3.14":    3.14,
		"-3.14":   -3.14,
		"1e14":    1e14,
		"1E14":    1e14,
		"-1e-14":  -1e-14,
		"2.5e+3":  2500,
		"10":      10,
		"0.5":     0.5,
		"123.456": 123.456,
	}
	for in, want := range ok {
		got, err := ParseFloat([]byte(in))
		if err != nil {
			t.Errorf("%q: %s", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %g, want %g", in, got, want)
		}
	}
	bad := []string{
		"", ".", "-", "1.", ".5", "1e", "1e+", "1.2.3", "nan", "inf",
		"NaN", "+1", "1 ", " 1", "0x1p3", "1e999",
	}
	for _, in := range bad {
		if _, err := ParseFloat([]byte(in)); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	// shortest form must re-parse to the same bits
	for _, f := range []float64{0, 1, -1, 3.14, 1e300, 5e-324, 0.1, 1e14} {
		s, err := FormatFloat(f)
		if err != nil {
			t.Fatalf("%g: %s", f, err)
		}
		back, err := ParseFloat([]byte(s))
		if err != nil {
			t.Fatalf("%g formatted as %q: %s", f, s, err)
		}
		if math.Float64bits(back) != math.Float64bits(f) {
			t.Errorf("%g round-tripped to %g via %q", f, back, s)
		}
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FormatFloat(f); err == nil {
			t.Errorf("%g: expected error", f)
		}
	}
}
