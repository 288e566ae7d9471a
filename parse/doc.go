// Package parse decodes tnetstring data into ir trees.
//
// Parse consumes a complete buffer; it never performs I/O and keeps no
// state between calls, so concurrent calls on independent buffers need
// no synchronization. Input is treated as untrusted: decoding either
// yields a complete tree or the first error encountered, and never
// panics or reads out of bounds.
package parse
