package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Int64   int64
	Uint64  uint64
	Float64 float64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Uint64 = y.Uint64
	dst.Float64 = y.Float64
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromUint(v uint64) *Node {
	return &Node{
		Type:   UintType,
		Uint64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// ToMap projects an object node onto a map of its field values.
// Returns nil for non-object nodes.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object node with fields in sorted key order. Use
// FromKeyVals to control field order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node preserving the given field order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = yField
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Get returns the value of the named field of an object node, or nil when
// the field is absent or the node is not an object. A nil node has no
// fields, so lookups chain without panicking.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// At returns the i-th element of an array node, or nil when the index is out
// of range (negative indices never wrap) or the node is not an array.
func At(y *Node, i int) *Node {
	if y == nil || y.Type != ArrayType {
		return nil
	}
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
