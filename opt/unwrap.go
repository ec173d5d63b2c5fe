package opt

import (
	"fmt"
	"math"
	"reflect"
)

// Unwrap extracts the held value as type T. It fails with ErrAbsent when the
// option is None and with ErrTypeMismatch when the held value cannot be
// converted to T.
//
// A value whose dynamic type is exactly T always converts, and a held nil
// converts to any interface target, coming back as nil. Numeric values
// additionally widen: integers convert to wider integers and to float64, and
// across signedness when the value is representable. Narrowing conversions,
// such as float to integer or a negative integer to unsigned, fail.
func Unwrap[T any](o Option) (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrAbsent
	}
	return coerce[T](o.value)
}

// UnwrapOr extracts the held value as type T, returning def when the option
// is absent or the held value does not convert. It never fails.
func UnwrapOr[T any](o Option, def T) T {
	t, err := Unwrap[T](o)
	if err != nil {
		return def
	}
	return t
}

// Must is like Unwrap but panics on failure.
func Must[T any](o Option) T {
	t, err := Unwrap[T](o)
	if err != nil {
		panic(err)
	}
	return t
}

// coerce converts a held value to T, applying the numeric widening rules
// when the dynamic type is not exactly T.
func coerce[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	if v == nil {
		// Type assertions never succeed on a nil interface; a held null
		// extracts to interface targets only, as their nil zero value.
		if reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: nil does not convert to %T", ErrTypeMismatch, zero)
	}
	n, ok := asNum(v)
	if !ok {
		return zero, fmt.Errorf("%w: %T does not convert to %T", ErrTypeMismatch, v, zero)
	}
	switch p := any(&zero).(type) {
	case *int:
		i, ok := n.toInt()
		if ok && i >= math.MinInt && i <= math.MaxInt {
			*p = int(i)
			return zero, nil
		}
	case *int64:
		if i, ok := n.toInt(); ok {
			*p = i
			return zero, nil
		}
	case *uint:
		u, ok := n.toUint()
		if ok && u <= math.MaxUint {
			*p = uint(u)
			return zero, nil
		}
	case *uint64:
		if u, ok := n.toUint(); ok {
			*p = u
			return zero, nil
		}
	case *float64:
		*p = n.float()
		return zero, nil
	}
	return zero, fmt.Errorf("%w: %T does not convert to %T", ErrTypeMismatch, v, zero)
}
