package dig

import (
	"github.com/maydoc/go-maydoc/ir"
	"github.com/maydoc/go-maydoc/opt"
)

// Dig descends from root through steps, one flatmap per step, and returns
// Some of the node reached. Any step that does not apply ends the walk with
// None: a missing field, keying into a non-object, indexing a non-array, or
// an out-of-range index. Negative indices never wrap and are simply out of
// range. Dig never fails with an error; absence and shape mismatches look
// the same from the outside.
//
// Dig with no steps returns Some(root), so digs compose:
//
//	Dig(root, a, b) == opt.FlatMap(Dig(root, a), b.Apply)
func Dig(root *ir.Node, steps ...Step) opt.Option {
	if root == nil {
		return opt.None()
	}
	res := opt.Some(root)
	for _, step := range steps {
		res = opt.FlatMap(res, step.Apply)
	}
	return res
}

// Apply returns Some of the child the step selects under node, or None when
// the step does not apply to the node's shape.
func (s Step) Apply(node *ir.Node) opt.Option {
	var child *ir.Node
	switch s.kind {
	case keyKind:
		child = ir.Get(node, s.key)
	default:
		child = ir.At(node, s.index)
	}
	if child == nil {
		return opt.None()
	}
	return opt.Some(child)
}

// DigAny descends like Dig and converts the node reached to its natural Go
// value: strings, booleans and numbers become scalars, null becomes
// Some(nil), present and distinct from None, and arrays and objects come
// back as the *ir.Node itself for further digging.
func DigAny(root *ir.Node, steps ...Step) opt.Option {
	return opt.FlatMap(Dig(root, steps...), func(node *ir.Node) opt.Option {
		return opt.Some(Natural(node))
	})
}

// Natural converts a leaf node to its scalar value. Composite nodes pass
// through unchanged.
func Natural(node *ir.Node) any {
	if !node.Type.IsLeaf() {
		return node
	}
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.IntType:
		return node.Int64
	case ir.UintType:
		return node.Uint64
	case ir.FloatType:
		return node.Float64
	case ir.BoolType:
		return node.Bool
	default:
		return nil
	}
}
