package opt

import "math"

// numType partitions the numeric payloads into signed, unsigned and float.
type numType int

const (
	intNum numType = iota
	uintNum
	floatNum
)

// num is the canonical form of a numeric payload. Exactly one of i, u, f is
// meaningful, selected by typ.
type num struct {
	i   int64
	u   uint64
	f   float64
	typ numType
}

// asNum canonicalizes any built-in numeric value. The second return is false
// for non-numbers.
func asNum(v any) (num, bool) {
	switch x := v.(type) {
	case int:
		return num{i: int64(x), typ: intNum}, true
	case int8:
		return num{i: int64(x), typ: intNum}, true
	case int16:
		return num{i: int64(x), typ: intNum}, true
	case int32:
		return num{i: int64(x), typ: intNum}, true
	case int64:
		return num{i: x, typ: intNum}, true
	case uint:
		return num{u: uint64(x), typ: uintNum}, true
	case uint8:
		return num{u: uint64(x), typ: uintNum}, true
	case uint16:
		return num{u: uint64(x), typ: uintNum}, true
	case uint32:
		return num{u: uint64(x), typ: uintNum}, true
	case uint64:
		return num{u: x, typ: uintNum}, true
	case float32:
		return num{f: float64(x), typ: floatNum}, true
	case float64:
		return num{f: x, typ: floatNum}, true
	}
	return num{}, false
}

func (n num) float() float64 {
	switch n.typ {
	case intNum:
		return float64(n.i)
	case uintNum:
		return float64(n.u)
	default:
		return n.f
	}
}

// toInt converts to int64 when the value is a representable integer. Floats
// never convert, that would be narrowing.
func (n num) toInt() (int64, bool) {
	switch n.typ {
	case intNum:
		return n.i, true
	case uintNum:
		if n.u <= math.MaxInt64 {
			return int64(n.u), true
		}
	}
	return 0, false
}

// toUint converts to uint64 when the value is a representable non-negative
// integer.
func (n num) toUint() (uint64, bool) {
	switch n.typ {
	case intNum:
		if n.i >= 0 {
			return uint64(n.i), true
		}
	case uintNum:
		return n.u, true
	}
	return 0, false
}

// numEqual compares two canonical numbers by mathematical value. When a
// float is involved the comparison happens in float64.
func numEqual(a, b num) bool {
	if a.typ == floatNum || b.typ == floatNum {
		return a.float() == b.float()
	}
	switch {
	case a.typ == intNum && b.typ == intNum:
		return a.i == b.i
	case a.typ == uintNum && b.typ == uintNum:
		return a.u == b.u
	case a.typ == intNum:
		return a.i >= 0 && uint64(a.i) == b.u
	default:
		return b.i >= 0 && a.u == uint64(b.i)
	}
}
