package frame

import (
	"errors"
	"testing"
)

type frameTest struct {
	in  string
	e   error
	len int
	tag Tag
	pay string
	end int
}

func TestParseOK(t *testing.T) {
	fts := []frameTest{
		{in: "5:hello,", len: 5, tag: TagString, pay: "hello", end: 8},
		{in: "0:,", len: 0, tag: TagString, pay: "", end: 3},
		{in: "0:~", len: 0, tag: TagNull, pay: "", end: 3},
		{in: "3:123#", len: 3, tag: TagInt, pay: "123", end: 6},
		{in: "4:3.14^", len: 4, tag: TagFloat, pay: "3.14", end: 7},
		{in: "4:true!", len: 4, tag: TagBool, pay: "true", end: 7},
		{in: "0:]", len: 0, tag: TagList, pay: "", end: 3},
		{in: "0:}", len: 0, tag: TagDict, pay: "", end: 3},
		// trailing bytes belong to the caller
		{in: "1:a,xyz", len: 1, tag: TagString, pay: "a", end: 4},
	}
	for i := range fts {
		ft := &fts[i]
		fr, err := Parse([]byte(ft.in), 0)
		if err != nil {
			t.Errorf("%q: %s", ft.in, err)
			continue
		}
		if fr.Len != ft.len || fr.Tag != ft.tag || string(fr.Payload) != ft.pay || fr.End != ft.end {
			t.Errorf("%q: got {%d %s %q %d}, want {%d %s %q %d}",
				ft.in, fr.Len, fr.Tag, fr.Payload, fr.End, ft.len, ft.tag, ft.pay, ft.end)
		}
	}
}

func TestParseErrors(t *testing.T) {
	fts := []frameTest{
		{in: "", e: ErrNoLength},
		{in: ":,", e: ErrNoLength},
		{in: "x", e: ErrNoLength},
		{in: "-1:a,", e: ErrNoLength},
		{in: "05:hello,", e: ErrLeadingZero},
		{in: "00:,", e: ErrLeadingZero},
		{in: "5", e: ErrNoColon},
		{in: "5hello,", e: ErrNoColon},
		{in: "5:hell", e: ErrTruncated},
		{in: "5:hello", e: ErrTruncated},
		{in: "2:5#", e: ErrTruncated},
		{in: "999999999999999999999:a,", e: ErrTruncated},
		{in: "3:abc", e: ErrTruncated},
		{in: "3:abc?", e: ErrUnknownTag},
		{in: "1:a;", e: ErrUnknownTag},
	}
	for i := range fts {
		ft := &fts[i]
		_, err := Parse([]byte(ft.in), 0)
		if err == nil {
			t.Errorf("%q: expected error, got none", ft.in)
			continue
		}
		if !errors.Is(err, ft.e) {
			t.Errorf("%q: got %q, want %q", ft.in, err, ft.e)
		}
		if !errors.Is(err, ErrFraming) {
			t.Errorf("%q: %q does not wrap the framing sentinel", ft.in, err)
		}
	}
}

func TestParseOffset(t *testing.T) {
	d := []byte("1:a,1:b,")
	fr, err := Parse(d, 4)
	if err != nil {
		t.Fatal(err)
	}
	if string(fr.Payload) != "b" || fr.End != 8 {
		t.Errorf("got payload %q end %d", fr.Payload, fr.End)
	}
}

// Every proper prefix of a valid frame must fail cleanly.
func TestParseTruncatedPrefixes(t *testing.T) {
	full := "18:5:hello,5:world,]"
	for i := 0; i < len(full); i++ {
		if _, err := Parse([]byte(full[:i]), 0); err == nil {
			t.Errorf("prefix %q: expected error", full[:i])
		}
	}
}
