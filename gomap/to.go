package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"

	"github.com/tnet-format/go-tnet/ir"
)

// ToIR converts a Go value to an ir tree.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string)
	return toIRValue(reflect.ValueOf(v), "", visited)
}

// toIRValue converts a reflect.Value to an ir node. fieldPath is used
// for error reporting; visited tracks pointer addresses to detect
// circular references.
func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			return textMarshalNode(tm, fieldPath)
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prevPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toIRValue(val.Elem(), fieldPath, visited)
		delete(visited, ptrAddr)
		return node, err
	}

	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		return textMarshalNode(tm, fieldPath)
	}
	if val.CanAddr() {
		if tm, ok := val.Addr().Interface().(encoding.TextMarshaler); ok {
			return textMarshalNode(tm, fieldPath)
		}
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("value %d overflows the wire integer range", u),
			}
		}
		return ir.FromInt(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, visited)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRValue(val.Elem(), fieldPath, visited)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func textMarshalNode(tm encoding.TextMarshaler, fieldPath string) (*ir.Node, error) {
	text, err := tm.MarshalText()
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
	}
	return ir.FromBytes(text), nil
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	// []byte becomes a string frame, matching the wire's opaque
	// byte-string values.
	if val.Kind() == reflect.Slice && val.Type().Elem().Kind() == reflect.Uint8 {
		return ir.FromBytes(val.Bytes()), nil
	}
	if val.Kind() == reflect.Slice && !val.IsNil() {
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prevPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}

	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemNode, err := toIRValue(val.Index(i), elemPath(fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prevPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	irMap := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		valueNode, err := toIRValue(iter.Value(), keyPath(fieldPath, key), visited)
		if err != nil {
			return nil, err
		}
		irMap[key] = valueNode
	}
	// FromMap sorts keys, so marshaling a map is deterministic.
	return ir.FromMap(irMap), nil
}

// toIRStruct converts a struct to an object node with fields in
// declaration order. Embedded structs are flattened.
func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	kvs := []ir.KeyVal{}
	seen := map[string]bool{}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		if field.Anonymous {
			if fieldVal.Kind() != reflect.Struct {
				continue
			}
			embedded, err := toIRValue(fieldVal, fieldPath, visited)
			if err != nil {
				return nil, err
			}
			if embedded.Type != ir.ObjectType {
				continue
			}
			for j, f := range embedded.Fields {
				if seen[f.String] {
					return nil, &MarshalError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("embedded struct field %q conflicts with existing field", f.String),
					}
				}
				seen[f.String] = true
				kvs = append(kvs, ir.KeyVal{Key: f.String, Val: embedded.Values[j]})
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
		if ft.optional && fieldVal.IsZero() {
			continue
		}
		fieldNode, err := toIRValue(fieldVal, keyPath(fieldPath, fieldName), visited)
		if err != nil {
			return nil, err
		}
		if seen[fieldName] {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("duplicate field name %q", fieldName),
			}
		}
		seen[fieldName] = true
		kvs = append(kvs, ir.KeyVal{Key: fieldName, Val: fieldNode})
	}
	return ir.FromKeyVals(kvs), nil
}

func elemPath(fieldPath string, i int) string {
	if fieldPath == "" {
		return fmt.Sprintf("[%d]", i)
	}
	return fmt.Sprintf("%s[%d]", fieldPath, i)
}

func keyPath(fieldPath, key string) string {
	if fieldPath == "" {
		return key
	}
	return fieldPath + "." + key
}
