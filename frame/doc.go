// Package frame scans single length:payload<tag> frames out of a byte
// buffer and implements the numeric text grammar shared by the decoder
// and encoder. It is pure and stateless; nesting is the decoder's job.
package frame
