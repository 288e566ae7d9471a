// Package ir defines the value tree produced by decoding tnetstring
// data and consumed by encoding it: null, bool, int, float, string,
// array and object nodes.
//
// Integers are fixed-width int64. Wire payloads outside that range are
// rejected at decode rather than wrapped or truncated.
package ir
