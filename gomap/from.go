package gomap

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/tnet-format/go-tnet/ir"
)

// FromIR converts an ir tree to a Go value. v must be a non-nil
// pointer to the target.
func FromIR(node *ir.Node, v any, options ...Option) error {
	o := &opts{}
	for _, f := range options {
		f(o)
	}
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromIR(node, val.Elem(), "", o)
}

func fromIR(node *ir.Node, val reflect.Value, fieldPath string, o *opts) error {
	if node == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "node is nil"}
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if node.Type == ir.NullType {
			if val.CanSet() {
				val.Set(reflect.Zero(typ))
			}
			return nil
		}
		if val.IsNil() {
			if !val.CanSet() {
				return &UnmarshalError{FieldPath: fieldPath, Message: "cannot set nil pointer"}
			}
			val.Set(reflect.New(typ.Elem()))
		}
		return fromIR(node, val.Elem(), fieldPath, o)
	}

	// UnmarshalText needs an addressable receiver to be observable.
	if node.Type == ir.StringType && kind != reflect.String && val.CanAddr() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return textUnmarshalNode(tu, node, fieldPath)
		}
	}

	if node.Type == ir.NullType {
		if val.CanSet() {
			val.Set(reflect.Zero(typ))
		}
		return nil
	}

	switch kind {
	case reflect.String:
		return fromIRToString(node, val, fieldPath)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromIRToInt(node, val, fieldPath)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromIRToUint(node, val, fieldPath)

	case reflect.Float32, reflect.Float64:
		return fromIRToFloat(node, val, fieldPath)

	case reflect.Bool:
		return fromIRToBool(node, val, fieldPath)

	case reflect.Slice, reflect.Array:
		return fromIRToSlice(node, val, fieldPath, o)

	case reflect.Map:
		return fromIRToMap(node, val, fieldPath, o)

	case reflect.Struct:
		return fromIRToStruct(node, val, fieldPath, o)

	case reflect.Interface:
		return fromIRToInterface(node, val, fieldPath)

	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func textUnmarshalNode(tu encoding.TextUnmarshaler, node *ir.Node, fieldPath string) error {
	if err := tu.UnmarshalText([]byte(node.String)); err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalText failed", Err: err}
	}
	return nil
}

func fromIRToString(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.StringType {
		return &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
	}
	if val.CanSet() {
		val.SetString(node.String)
	}
	return nil
}

func fromIRToInt(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.IntType {
		return &TypeError{FieldPath: fieldPath, Expected: "Int", Actual: node.Type.String()}
	}
	if val.OverflowInt(node.Int64) {
		return &TypeError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", node.Int64, val.Type()),
		}
	}
	if val.CanSet() {
		val.SetInt(node.Int64)
	}
	return nil
}

func fromIRToUint(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.IntType {
		return &TypeError{FieldPath: fieldPath, Expected: "Int", Actual: node.Type.String()}
	}
	if node.Int64 < 0 || val.OverflowUint(uint64(node.Int64)) {
		return &TypeError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", node.Int64, val.Type()),
		}
	}
	if val.CanSet() {
		val.SetUint(uint64(node.Int64))
	}
	return nil
}

func fromIRToFloat(node *ir.Node, val reflect.Value, fieldPath string) error {
	var f float64
	switch node.Type {
	case ir.FloatType:
		f = node.Float64
	case ir.IntType:
		f = float64(node.Int64)
	default:
		return &TypeError{FieldPath: fieldPath, Expected: "Float", Actual: node.Type.String()}
	}
	if val.OverflowFloat(f) {
		return &TypeError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %v overflows %s", f, val.Type()),
		}
	}
	if val.CanSet() {
		val.SetFloat(f)
	}
	return nil
}

func fromIRToBool(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.BoolType {
		return &TypeError{FieldPath: fieldPath, Expected: "Bool", Actual: node.Type.String()}
	}
	if val.CanSet() {
		val.SetBool(node.Bool)
	}
	return nil
}

func fromIRToSlice(node *ir.Node, val reflect.Value, fieldPath string, o *opts) error {
	// []byte takes string frames verbatim.
	if val.Kind() == reflect.Slice && val.Type().Elem().Kind() == reflect.Uint8 {
		if node.Type != ir.StringType {
			return &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
		}
		if val.CanSet() {
			val.SetBytes([]byte(node.String))
		}
		return nil
	}
	if node.Type != ir.ArrayType {
		return &TypeError{FieldPath: fieldPath, Expected: "Array", Actual: node.Type.String()}
	}
	n := len(node.Values)
	if val.Kind() == reflect.Array {
		if n != val.Len() {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("array length mismatch: %d elements for [%d]%s", n, val.Len(), val.Type().Elem()),
			}
		}
	} else {
		if !val.CanSet() {
			return &UnmarshalError{FieldPath: fieldPath, Message: "cannot set slice"}
		}
		val.Set(reflect.MakeSlice(val.Type(), n, n))
	}
	for i, elt := range node.Values {
		if err := fromIR(elt, val.Index(i), elemPath(fieldPath, i), o); err != nil {
			return err
		}
	}
	return nil
}

func fromIRToMap(node *ir.Node, val reflect.Value, fieldPath string, o *opts) error {
	if node.Type != ir.ObjectType {
		return &TypeError{FieldPath: fieldPath, Expected: "Object", Actual: node.Type.String()}
	}
	if val.Type().Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	if !val.CanSet() {
		return &UnmarshalError{FieldPath: fieldPath, Message: "cannot set map"}
	}
	m := reflect.MakeMapWithSize(val.Type(), len(node.Fields))
	for i, f := range node.Fields {
		key := reflect.ValueOf(f.String).Convert(val.Type().Key())
		// first occurrence wins for duplicate keys
		if m.MapIndex(key).IsValid() {
			continue
		}
		elt := reflect.New(val.Type().Elem()).Elem()
		if err := fromIR(node.Values[i], elt, keyPath(fieldPath, f.String), o); err != nil {
			return err
		}
		m.SetMapIndex(key, elt)
	}
	val.Set(m)
	return nil
}

func fromIRToStruct(node *ir.Node, val reflect.Value, fieldPath string, o *opts) error {
	if node.Type != ir.ObjectType {
		return &TypeError{FieldPath: fieldPath, Expected: "Object", Actual: node.Type.String()}
	}
	dests := map[string]reflect.Value{}
	if err := structDests(val, fieldPath, dests); err != nil {
		return err
	}
	done := map[string]bool{}
	for i, f := range node.Fields {
		dst, ok := dests[f.String]
		if !ok {
			if o.disallowUnknown {
				return &UnmarshalError{
					FieldPath: fieldPath,
					Message:   fmt.Sprintf("unknown field %q", f.String),
				}
			}
			continue
		}
		// first occurrence wins for duplicate wire fields
		if done[f.String] {
			continue
		}
		done[f.String] = true
		if err := fromIR(node.Values[i], dst, keyPath(fieldPath, f.String), o); err != nil {
			return err
		}
	}
	return nil
}

// structDests collects wire-name to destination mappings, flattening
// embedded structs the same way toIRStruct does.
func structDests(val reflect.Value, fieldPath string, dests map[string]reflect.Value) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)
		if field.Anonymous {
			if fieldVal.Kind() == reflect.Struct {
				if err := structDests(fieldVal, fieldPath, dests); err != nil {
					return err
				}
			}
			continue
		}
		ft := parseFieldTag(field.Tag.Get("tnet"))
		if ft.skip {
			continue
		}
		fieldName := field.Name
		if ft.name != "" {
			fieldName = ft.name
		}
		if _, exists := dests[fieldName]; exists {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("duplicate field name %q", fieldName),
			}
		}
		dests[fieldName] = fieldVal
	}
	return nil
}

func fromIRToInterface(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.NumMethod() != 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot unmarshal into non-empty interface %s", val.Type()),
		}
	}
	v, err := anyFromNode(node, fieldPath)
	if err != nil {
		return err
	}
	if val.CanSet() {
		if v == nil {
			val.Set(reflect.Zero(val.Type()))
		} else {
			val.Set(reflect.ValueOf(v))
		}
	}
	return nil
}

// anyFromNode is the generic form used for interface{} destinations:
// null, bool, int64, float64, string, []any and map[string]any.
func anyFromNode(node *ir.Node, fieldPath string) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.IntType:
		return node.Int64, nil
	case ir.FloatType:
		return node.Float64, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := anyFromNode(elt, elemPath(fieldPath, i))
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			if _, ok := res[f.String]; ok {
				continue
			}
			v, err := anyFromNode(node.Values[i], keyPath(fieldPath, f.String))
			if err != nil {
				return nil, err
			}
			res[f.String] = v
		}
		return res, nil
	default:
		return nil, &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot map type %s", node.Type),
		}
	}
}
