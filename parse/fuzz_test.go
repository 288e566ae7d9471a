package parse

import (
	"bytes"
	"testing"

	"github.com/tnet-format/go-tnet/encode"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		// Scalars
		"0:~",
		"4:true!",
		"5:false!",
		"1:0#",
		"3:123#",
		"2:-1#",
		"4:3.14^",
		"6:-1e-10^",
		"0:,",
		"5:hello,",

		// Lists
		"0:]",
		"16:5:hello,5:world,]",
		"12:1:1#1:2#1:3#]",
		"9:6:3:0:~]]]",

		// Dicts
		"0:}",
		"13:6:option,1:1#}",
		"27:3:int,1:1#3:seq,8:1:a,1:b,]}",

		// Near-valid edge cases
		"05:hello,",
		"3:abc",
		"2:5#",
		"1:a,x",
		"999999999999999999999:,",
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse must not panic or read out of bounds
		node, err := Parse(data, MaxDepth(64))
		if err != nil {
			return // parse errors are expected for random input
		}

		// Secondary: a parsed tree must re-encode
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			t.Fatalf("decoded tree failed to encode: %s", err)
		}

		// Tertiary: the re-encoding must itself parse
		if _, err := Parse(buf.Bytes(), MaxDepth(64)); err != nil {
			t.Fatalf("re-encoded bytes failed to parse: %s", err)
		}
	})
}
