package parse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/maydoc/go-maydoc/ir"
)

// fromYAML converts the decoder's generic output to a node tree. Mappings
// arrive as yaml.MapSlice under yaml.UseOrderedMap, preserving field order.
func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			key, err := fieldName(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for key, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
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
		return ir.FromUint(uint64(x)), nil
	case uint8:
		return ir.FromUint(uint64(x)), nil
	case uint16:
		return ir.FromUint(uint64(x)), nil
	case uint32:
		return ir.FromUint(uint64(x)), nil
	case uint64:
		return ir.FromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		// The decoder resolves timestamp scalars; keep the text form.
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	}
	return nil, fmt.Errorf("%w: %T", ir.ErrUnrepresentable, v)
}

// fieldName renders a mapping key as a string field. Non-string scalar keys
// such as numbers and booleans are legal YAML and take their text form.
func fieldName(k any) (string, error) {
	switch key := k.(type) {
	case string:
		return key, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(key), nil
	case int:
		return strconv.FormatInt(int64(key), 10), nil
	case int64:
		return strconv.FormatInt(key, 10), nil
	case uint64:
		return strconv.FormatUint(key, 10), nil
	case float64:
		return strconv.FormatFloat(key, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("%w: field key %T", ir.ErrUnrepresentable, k)
}
