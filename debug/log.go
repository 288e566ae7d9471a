package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tnet-format/go-tnet/encode"
	"github.com/tnet-format/go-tnet/ir"
)

// Node wraps an ir node so it renders human-readably in log output.
type Node struct{ *ir.Node }

func (n Node) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Dump(n.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", n.Node)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = Node{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
