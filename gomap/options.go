package gomap

import "github.com/tnet-format/go-tnet/parse"

type opts struct {
	disallowUnknown bool
	parseOpts       []parse.ParseOption
}

type Option func(*opts)

// DisallowUnknownFields makes Unmarshal and FromIR fail when a wire
// object carries a field with no destination in the target struct.
// The default is to ignore unknown fields.
func DisallowUnknownFields() Option {
	return func(o *opts) { o.disallowUnknown = true }
}

// WithParseOptions forwards decode bounds (parse.MaxDepth,
// parse.MaxTotalSize) to the underlying Parse call in Unmarshal.
func WithParseOptions(popts ...parse.ParseOption) Option {
	return func(o *opts) { o.parseOpts = append(o.parseOpts, popts...) }
}
