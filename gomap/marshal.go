package gomap

import (
	"github.com/tnet-format/go-tnet/debug"
	"github.com/tnet-format/go-tnet/encode"
	"github.com/tnet-format/go-tnet/parse"
)

// Marshal converts a Go value to its wire form.
func Marshal(v any) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	if debug.Gomap() {
		debug.Logf("marshal %T:\n%s", v, node)
	}
	return encode.Append(nil, node)
}

// Unmarshal decodes wire data into a Go value. v must be a non-nil
// pointer. Decode bounds can be forwarded with WithParseOptions.
func Unmarshal(d []byte, v any, options ...Option) error {
	o := &opts{}
	for _, f := range options {
		f(o)
	}
	node, err := parse.Parse(d, o.parseOpts...)
	if err != nil {
		return err
	}
	return FromIR(node, v, options...)
}
