package ir

import (
	"fmt"
	"reflect"
)

// ToAny converts node to its natural Go value: objects become
// map[string]any, arrays []any, strings string, integers int64 or uint64
// depending on the variant, floats float64, booleans bool, and null nil.
// The conversion is deep.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := 0; i < n; i++ {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case IntType:
		return node.Int64
	case UintType:
		return node.Uint64
	case FloatType:
		return node.Float64
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny builds a node from a natural Go value. It accepts nil, booleans,
// strings, all integer and float widths, *Node (deep-copied), []any,
// string-keyed maps, and via reflection any other slice or string-keyed map
// type. Map fields come out in sorted key order. Values outside that set
// return an error wrapping ErrUnrepresentable.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromUint(uint64(x)), nil
	case uint8:
		return FromUint(uint64(x)), nil
	case uint16:
		return FromUint(uint64(x)), nil
	case uint32:
		return FromUint(uint64(x)), nil
	case uint64:
		return FromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			val, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for key, elt := range x {
			val, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return FromMap(m), nil
	}
	return fromReflect(v)
}

// fromReflect handles slice and map kinds beyond the concrete []any and
// map[string]any cases, such as []string or map[string]int.
func fromReflect(v any) (*Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		vals := make([]*Node, rv.Len())
		for i := range vals {
			val, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return FromSlice(vals), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map keyed by %s", ErrUnrepresentable, rv.Type().Key())
		}
		m := make(map[string]*Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			val, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = val
		}
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnrepresentable, v)
}

// MustFromAny is like FromAny but panics on unrepresentable values.
func MustFromAny(v any) *Node {
	node, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return node
}
