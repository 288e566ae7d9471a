package parse

import (
	"errors"

	"github.com/tnet-format/go-tnet/frame"
)

var (
	// ErrFraming covers malformed lengths, truncation and unknown
	// tag bytes; frame errors surface unchanged.
	ErrFraming = frame.ErrFraming

	ErrType      = errors.New("type error")
	ErrStructure = errors.New("structural error")
	ErrDepth     = errors.New("max depth exceeded")
	ErrSize      = errors.New("max total size exceeded")
	ErrTrailing  = errors.New("trailing data after top-level frame")
)
