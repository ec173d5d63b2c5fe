package opt

import (
	"fmt"
	"reflect"
)

// Option holds either a present value of any dynamic type or nothing. The
// zero value is None.
type Option struct {
	value any
	ok    bool
}

// Some returns an Option holding v. Any value can be held, including nil:
// Some(nil) is present and distinct from None.
func Some(v any) Option {
	return Option{value: v, ok: true}
}

// None returns the absent Option.
func None() Option {
	return Option{}
}

// IsSome reports whether the option holds a value.
func (o Option) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is absent.
func (o Option) IsNone() bool {
	return !o.ok
}

// Value returns the held value and whether one is present. The value comes
// back untyped; use Unwrap or UnwrapOr for typed access.
func (o Option) Value() (any, bool) {
	return o.value, o.ok
}

// String renders the option for diagnostics, as Some(v) or None.
func (o Option) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Equaler lets a payload type define value equality against other payloads.
// When either side of Equal holds an Equaler, its EqualValue method decides.
type Equaler interface {
	EqualValue(other any) bool
}

// Equal reports whether two options hold equal values. An absent option
// equals nothing, not even another absent option. Present numeric values
// compare mathematically across types, so Some(2) equals Some(2.0).
func (o Option) Equal(p Option) bool {
	if !o.ok || !p.ok {
		return false
	}
	return valueEqual(o.value, p.value)
}

func valueEqual(a, b any) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.EqualValue(b)
	}
	if eq, ok := b.(Equaler); ok {
		return eq.EqualValue(a)
	}
	na, aok := asNum(a)
	nb, bok := asNum(b)
	if aok && bok {
		return numEqual(na, nb)
	}
	return reflect.DeepEqual(a, b)
}
