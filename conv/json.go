package conv

import (
	"bytes"
	"encoding/json"

	"github.com/tnet-format/go-tnet/debug"
	"github.com/tnet-format/go-tnet/ir"
)

// ToJSON renders an ir tree as JSON. Duplicate object keys collapse to
// the first occurrence and key order follows encoding/json.
func ToJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}

// FromJSON parses JSON into an ir tree. Numbers keep their integral or
// floating identity via json.Number.
func FromJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if debug.Conv() {
		debug.Logf("json -> any: %v\n", v)
	}
	return FromAny(v)
}
