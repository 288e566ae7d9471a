// Package encode emits the tnetstring wire form of ir trees.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	var buf bytes.Buffer
//	err := encode.Encode(node, &buf)
//
// Aggregate frames carry their children's total byte length as a
// prefix, so children are always materialized before their parent
// frame is emitted.
//
// Dump renders a tree in an indented human-readable layout for
// debugging; its output is not wire format.
package encode
