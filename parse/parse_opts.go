package parse

// DefaultMaxDepth caps aggregate nesting when MaxDepth is not given.
// Untrusted input can otherwise exhaust the call stack.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
	maxSize  int
}

type ParseOption func(*parseOpts)

// MaxDepth bounds aggregate nesting. Depth n means n enclosing
// lists/dicts; scalars at top level have depth 0.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// MaxTotalSize bounds the cumulative payload bytes processed across
// all frames. Zero (the default) leaves it bounded only by the input
// length itself.
func MaxTotalSize(n int) ParseOption {
	return func(o *parseOpts) { o.maxSize = n }
}
