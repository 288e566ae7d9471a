package conv

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/tnet-format/go-tnet/ir"
)

// ToAny converts an ir tree to plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Duplicate object keys
// collapse to the first occurrence and field order is lost; use the
// ir tree directly when either matters.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			if _, ok := res[f.String]; ok {
				continue
			}
			res[f.String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.IntType:
		return node.Int64
	case ir.FloatType:
		return node.Float64
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values to an ir tree. It accepts the
// shapes produced by encoding/json and yaml decoders plus ir nodes
// themselves.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case []byte:
		return ir.FromBytes(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		return fromNumber(x)
	case []any:
		elements := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			elements[i] = n
		}
		return ir.FromSlice(elements), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("cannot convert %T", v)
	}
}

func fromUint(u uint64) (*ir.Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("value %d overflows the wire integer range", u)
	}
	return ir.FromInt(int64(u)), nil
}

// fromNumber keeps integral JSON numbers integral instead of forcing
// everything through float64.
func fromNumber(num json.Number) (*ir.Node, error) {
	if i, err := num.Int64(); err == nil {
		return ir.FromInt(i), nil
	}
	f, err := num.Float64()
	if err != nil {
		return nil, fmt.Errorf("cannot convert number %q: %w", num.String(), err)
	}
	return ir.FromFloat(f), nil
}
