package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tnet-format/go-tnet/frame"
	"github.com/tnet-format/go-tnet/ir"
)

// Encode writes the wire form of node to w. Well-formed trees always
// encode; the error cases are policy-bounded values with no wire form
// (NaN or infinite floats) and malformed objects (non-string keys,
// mismatched field/value counts).
func Encode(node *ir.Node, w io.Writer) error {
	d, err := Append(nil, node)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Append appends the wire form of node to dst and returns the extended
// slice.
func Append(dst []byte, node *ir.Node) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return appendFrame(dst, nil, frame.TagNull), nil
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return appendFrame(dst, []byte(v), frame.TagBool), nil
	case ir.IntType:
		return appendFrame(dst, []byte(frame.FormatInt(node.Int64)), frame.TagInt), nil
	case ir.FloatType:
		v, err := frame.FormatFloat(node.Float64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return appendFrame(dst, []byte(v), frame.TagFloat), nil
	case ir.StringType:
		return appendFrame(dst, []byte(node.String), frame.TagString), nil
	case ir.ArrayType:
		return appendArray(dst, node)
	case ir.ObjectType:
		return appendObject(dst, node)
	default:
		return nil, fmt.Errorf("%w: cannot encode type %s", ErrEncoding, node.Type)
	}
}

func appendArray(dst []byte, node *ir.Node) ([]byte, error) {
	var payload []byte
	var err error
	for _, v := range node.Values {
		payload, err = Append(payload, v)
		if err != nil {
			return nil, err
		}
	}
	return appendFrame(dst, payload, frame.TagList), nil
}

func appendObject(dst []byte, node *ir.Node) ([]byte, error) {
	if len(node.Fields) != len(node.Values) {
		return nil, fmt.Errorf("%w: object has %d fields and %d values",
			ErrEncoding, len(node.Fields), len(node.Values))
	}
	var payload []byte
	var err error
	for i, f := range node.Fields {
		if f == nil || f.Type != ir.StringType {
			return nil, fmt.Errorf("%w: object key must be a string node", ErrEncoding)
		}
		payload = appendFrame(payload, []byte(f.String), frame.TagString)
		payload, err = Append(payload, node.Values[i])
		if err != nil {
			return nil, err
		}
	}
	return appendFrame(dst, payload, frame.TagDict), nil
}

func appendFrame(dst, payload []byte, tag frame.Tag) []byte {
	dst = strconv.AppendInt(dst, int64(len(payload)), 10)
	dst = append(dst, ':')
	dst = append(dst, payload...)
	return append(dst, byte(tag))
}
