package ir

import (
	"maps"
	"slices"
)

// Node is one value in a decoded tree. Type selects which of the
// remaining fields carry the value.
//
// String holds the raw payload bytes of a string value; it is opaque
// and need not be valid UTF-8. Objects keep Fields and Values as
// parallel slices in insertion order; Fields entries are always
// StringType. Duplicate field names are legal and preserved.
//
// A Node tree is immutable once built: decoding produces a fresh tree,
// and nothing in this package mutates a node it did not create.
type Node struct {
	Type Type

	String  string
	Bool    bool
	Int64   int64
	Float64 float64

	Fields []*Node
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBytes(d []byte) *Node {
	return &Node{Type: StringType, String: string(d)}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = FromString(kvs[i].Key)
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object with keys in sorted order so that
// construction from a Go map is deterministic.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, m[key])
	}
	return res
}

// ToMap flattens an object to a map. With duplicate field names the
// first occurrence wins; use Fields/Values directly to see all pairs.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		if _, ok := res[node.Fields[i].String]; ok {
			continue
		}
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// Get returns the value of the first field named field, or nil.
func Get(y *Node, field string) *Node {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of elements of an array or fields of an
// object, and 0 for leaves.
func (y *Node) Len() int {
	switch y.Type {
	case ArrayType:
		return len(y.Values)
	case ObjectType:
		return len(y.Fields)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		String:  y.String,
		Bool:    y.Bool,
		Int64:   y.Int64,
		Float64: y.Float64,
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree. f is called on each node before (isPost false)
// and after (isPost true) its children; returning false from the pre
// call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for i := range y.Fields {
			if err := y.Fields[i].Visit(f); err != nil {
				return err
			}
		}
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
