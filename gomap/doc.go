// Package gomap maps Go values to and from tnetstring data using
// reflection.
//
// Marshal and Unmarshal go straight between Go values and wire bytes;
// ToIR and FromIR expose the intermediate ir tree. Supported kinds are
// bool, the integer and unsigned widths, float32/64, string, []byte,
// slices, arrays, maps with string keys, structs and pointers. A nil
// pointer marshals to null and null unmarshals to the zero value, so
// pointer fields act as optional fields.
//
// Struct fields may carry a tag:
//
//	Name string `tnet:"field=n"`          // renamed on the wire
//	Note string `tnet:"field=note optional"` // omitted when zero
//	Skip string `tnet:"-"`                // never mapped
package gomap
