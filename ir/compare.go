package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Numbers compare by value across the Int, Uint and Float variants, so
// FromInt(2), FromUint(2) and FromFloat(2.0) all compare equal. When a float
// is involved the comparison happens in float64.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType, UintType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < numbers < String < Array < Object.
// The three numeric variants share a rank so that they compare by value.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, UintType, FloatType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Type == FloatType || b.Type == FloatType {
		return cmp.Compare(numFloat(a), numFloat(b))
	}
	switch {
	case a.Type == IntType && b.Type == IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case a.Type == UintType && b.Type == UintType:
		return cmp.Compare(a.Uint64, b.Uint64)
	case a.Type == IntType:
		if a.Int64 < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int64), b.Uint64)
	default:
		if b.Int64 < 0 {
			return 1
		}
		return cmp.Compare(a.Uint64, uint64(b.Int64))
	}
}

func numFloat(n *Node) float64 {
	switch n.Type {
	case IntType:
		return float64(n.Int64)
	case UintType:
		return float64(n.Uint64)
	default:
		return n.Float64
	}
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// EqualValue reports whether the node's value equals other. The argument may
// be another *Node or any value representable as one (nil, bool, string,
// integers, floats, and composites thereof). Numbers compare by value across
// variants, so a node holding 2 equals int64(2), uint64(2) and float64(2.0).
func (y *Node) EqualValue(other any) bool {
	if o, ok := other.(*Node); ok {
		return Compare(y, o) == 0
	}
	o, err := FromAny(other)
	if err != nil {
		return false
	}
	return Compare(y, o) == 0
}
