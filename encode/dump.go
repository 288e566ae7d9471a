package encode

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tnet-format/go-tnet/frame"
	"github.com/tnet-format/go-tnet/ir"

	"github.com/mattn/go-isatty"
)

type dumpState struct {
	indent int
	depth  int

	Color func(ir.Type, ColorAttr, string) string
}

type DumpOption func(*dumpState)

func DumpIndent(n int) DumpOption {
	return func(ds *dumpState) { ds.indent = n }
}

func DumpColors(c *Colors) DumpOption {
	return func(ds *dumpState) { ds.Color = c.Color }
}

// AutoColors enables colors when w is a terminal.
func AutoColors(w io.Writer) DumpOption {
	return func(ds *dumpState) {
		f, ok := w.(*os.File)
		if !ok {
			return
		}
		if isatty.IsTerminal(f.Fd()) {
			ds.Color = NewColors().Color
		}
	}
}

// Dump writes an indented human-readable rendering of node to w. The
// output is for debugging and logs, not for the wire; use Encode for
// wire bytes.
func Dump(node *ir.Node, w io.Writer, opts ...DumpOption) error {
	ds := &dumpState{indent: 2}
	for _, opt := range opts {
		opt(ds)
	}
	if err := dump(node, w, ds); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func dump(node *ir.Node, w io.Writer, ds *dumpState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.ObjectType:
		return dumpObject(node, w, ds)
	case ir.ArrayType:
		return dumpArray(node, w, ds)
	default:
		return writeString(w, dumpScalar(node, ds))
	}
}

func dumpObject(node *ir.Node, w io.Writer, ds *dumpState) error {
	if len(node.Fields) == 0 {
		return writeString(w, ds.sep(ir.ObjectType, "{}"))
	}
	if err := writeString(w, ds.sep(ir.ObjectType, "{")); err != nil {
		return err
	}
	ds.depth++
	for i, f := range node.Fields {
		if err := writeNL(w, ds); err != nil {
			return err
		}
		field := strconv.Quote(f.String)
		if ds.Color != nil {
			field = ds.Color(ir.ObjectType, FieldColor, field)
		}
		if err := writeString(w, field+ds.sep(ir.ObjectType, ":")+" "); err != nil {
			return err
		}
		if err := dump(node.Values[i], w, ds); err != nil {
			return err
		}
	}
	ds.depth--
	if err := writeNL(w, ds); err != nil {
		return err
	}
	return writeString(w, ds.sep(ir.ObjectType, "}"))
}

func dumpArray(node *ir.Node, w io.Writer, ds *dumpState) error {
	if len(node.Values) == 0 {
		return writeString(w, ds.sep(ir.ArrayType, "[]"))
	}
	if err := writeString(w, ds.sep(ir.ArrayType, "[")); err != nil {
		return err
	}
	ds.depth++
	for _, v := range node.Values {
		if err := writeNL(w, ds); err != nil {
			return err
		}
		if err := dump(v, w, ds); err != nil {
			return err
		}
	}
	ds.depth--
	if err := writeNL(w, ds); err != nil {
		return err
	}
	return writeString(w, ds.sep(ir.ArrayType, "]"))
}

func dumpScalar(node *ir.Node, ds *dumpState) string {
	var v string
	switch node.Type {
	case ir.NullType:
		v = "null"
	case ir.BoolType:
		v = strconv.FormatBool(node.Bool)
	case ir.IntType:
		v = frame.FormatInt(node.Int64)
	case ir.FloatType:
		f, err := frame.FormatFloat(node.Float64)
		if err != nil {
			// Dump is for humans; NaN/Inf only fail wire encoding.
			f = fmt.Sprintf("%v", node.Float64)
		}
		v = f
	case ir.StringType:
		v = strconv.Quote(node.String)
	default:
		v = "<" + node.Type.String() + ">"
	}
	if ds.Color != nil {
		v = ds.Color(node.Type, ValueColor, v)
	}
	return v
}

func (ds *dumpState) sep(t ir.Type, s string) string {
	if ds.Color == nil {
		return s
	}
	return ds.Color(t, SepColor, s)
}

func writeNL(w io.Writer, ds *dumpState) error {
	return writeString(w, "\n"+strings.Repeat(" ", ds.indent*ds.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
