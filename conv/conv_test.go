package conv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnet-format/go-tnet/ir"
	"github.com/tnet-format/go-tnet/parse"
)

func TestToAny(t *testing.T) {
	node, err := parse.Parse([]byte("27:3:int,1:1#3:seq,8:1:a,1:b,]}"))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"int": int64(1),
		"seq": []any{"a", "b"},
	}, ToAny(node))

	require.Equal(t, nil, ToAny(ir.Null()))
	require.Equal(t, 3.5, ToAny(ir.FromFloat(3.5)))

	// duplicate keys collapse to the first occurrence
	dup := ir.FromKeyVals([]ir.KeyVal{
		{Key: "k", Val: ir.FromInt(1)},
		{Key: "k", Val: ir.FromInt(2)},
	})
	require.Equal(t, map[string]any{"k": int64(1)}, ToAny(dup))
}

func TestFromAny(t *testing.T) {
	node, err := FromAny(map[string]any{
		"b": true,
		"n": 42,
		"f": 2.5,
		"s": "x",
		"l": []any{nil, int64(1)},
	})
	require.NoError(t, err)
	require.True(t, ir.Equal(node, ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromBool(true)},
		{Key: "f", Val: ir.FromFloat(2.5)},
		{Key: "l", Val: ir.FromSlice([]*ir.Node{ir.Null(), ir.FromInt(1)})},
		{Key: "n", Val: ir.FromInt(42)},
		{Key: "s", Val: ir.FromString("x")},
	})))

	_, err = FromAny(struct{}{})
	require.Error(t, err)

	_, err = FromAny(uint64(1) << 63)
	require.Error(t, err)

	// ir nodes pass through as deep copies
	orig := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	got, err := FromAny(orig)
	require.NoError(t, err)
	require.True(t, ir.Equal(orig, got))
	got.Values[0].Int64 = 2
	require.Equal(t, int64(1), orig.Values[0].Int64)
}

func TestJSON(t *testing.T) {
	node, err := FromJSON([]byte(`{"a": 1, "b": 2.5, "c": [true, null, "s"]}`))
	require.NoError(t, err)
	require.True(t, ir.Equal(node, ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromFloat(2.5)},
		{Key: "c", Val: ir.FromSlice([]*ir.Node{
			ir.FromBool(true), ir.Null(), ir.FromString("s"),
		})},
	})))

	d, err := ToJSON(node)
	require.NoError(t, err)
	back, err := FromJSON(d)
	require.NoError(t, err)
	require.True(t, ir.Equal(node, back))

	_, err = FromJSON([]byte(`{`))
	require.Error(t, err)
}

func TestJSONBigInt(t *testing.T) {
	// integral JSON numbers keep their integral identity
	node, err := FromJSON([]byte(`9007199254740993`))
	require.NoError(t, err)
	require.Equal(t, ir.IntType, node.Type)
	require.Equal(t, int64(9007199254740993), node.Int64)
}

func TestYAML(t *testing.T) {
	node, err := FromYAML([]byte("name: ada\ncount: 3\nratio: 0.5\ntags:\n  - a\n  - b\n"))
	require.NoError(t, err)
	require.Equal(t, ir.ObjectType, node.Type)
	require.True(t, ir.Equal(ir.Get(node, "name"), ir.FromString("ada")))
	require.True(t, ir.Equal(ir.Get(node, "count"), ir.FromInt(3)))
	require.True(t, ir.Equal(ir.Get(node, "ratio"), ir.FromFloat(0.5)))
	require.True(t, ir.Equal(ir.Get(node, "tags"),
		ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")})))

	d, err := ToYAML(node)
	require.NoError(t, err)
	back, err := FromYAML(d)
	require.NoError(t, err)
	require.True(t, ir.Equal(node, back))

	_, err = FromYAML([]byte("a: [1,"))
	require.Error(t, err)
}
