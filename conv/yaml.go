package conv

import (
	"github.com/goccy/go-yaml"

	"github.com/tnet-format/go-tnet/ir"
)

// ToYAML renders an ir tree as YAML.
func ToYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToAny(node))
}

// FromYAML parses YAML into an ir tree.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
