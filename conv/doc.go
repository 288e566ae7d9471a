// Package conv bridges ir trees to and from plain Go values, JSON and
// YAML. The conversions are lossy where the formats disagree: wire
// objects preserve duplicate keys and field order, the targets here do
// not.
package conv
