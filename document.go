package maydoc

import (
	"bytes"

	"github.com/maydoc/go-maydoc/dig"
	"github.com/maydoc/go-maydoc/encode"
	"github.com/maydoc/go-maydoc/eval"
	"github.com/maydoc/go-maydoc/ir"
	"github.com/maydoc/go-maydoc/opt"
	"github.com/maydoc/go-maydoc/parse"
)

// Document wraps a node tree with the module's traversal, query and patch
// surface.
type Document struct {
	node *ir.Node
}

// Parse decodes YAML or JSON text into a document.
func Parse(d []byte) (*Document, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return &Document{node: node}, nil
}

// ParseString decodes a document given as a string.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

// FromNode wraps an existing node tree. The tree is not copied.
func FromNode(node *ir.Node) *Document {
	return &Document{node: node}
}

// FromAny builds a document from a natural Go value under the ir.FromAny
// rules.
func FromAny(v any) (*Document, error) {
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	return &Document{node: node}, nil
}

// Node returns the document's root node.
func (d *Document) Node() *ir.Node {
	return d.node
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{node: d.node.Clone()}
}

// Equal reports whether two documents hold equal trees, with numbers
// comparing by value across variants.
func (d *Document) Equal(other *Document) bool {
	return ir.Compare(d.node, other.node) == 0
}

// Dig descends through steps and returns Some of the node reached, None as
// soon as a step does not apply. See the dig package for the uniform
// failure rules.
func (d *Document) Dig(steps ...dig.Step) opt.Option {
	return dig.Dig(d.node, steps...)
}

// DigAny is Dig with the reached leaf converted to its natural Go value;
// null leaves come back as Some(nil), distinct from None.
func (d *Document) DigAny(steps ...dig.Step) opt.Option {
	return dig.DigAny(d.node, steps...)
}

// DigPath digs along a path string such as "applications[0].name". The
// error reports a path that does not parse; absence is still None.
func (d *Document) DigPath(path string) (opt.Option, error) {
	p, err := dig.ParsePath(path)
	if err != nil {
		return opt.None(), err
	}
	return dig.Dig(d.node, p...), nil
}

// DigAnyPath is DigPath with the natural value conversion of DigAny.
func (d *Document) DigAnyPath(path string) (opt.Option, error) {
	p, err := dig.ParsePath(path)
	if err != nil {
		return opt.None(), err
	}
	return dig.DigAny(d.node, p...), nil
}

// Eval runs an expression against the document. See the eval package for
// the expression language and environment.
func (d *Document) Eval(src string) (opt.Option, error) {
	return eval.Eval(d.node, src)
}

// String renders the document as pretty-printed JSON.
func (d *Document) String() string {
	return encode.MustString(d.node)
}

// MarshalJSON renders the document compactly, preserving field order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return jsonBytes(d.node), nil
}

// UnmarshalJSON replaces the document with the parse of data.
func (d *Document) UnmarshalJSON(data []byte) error {
	node, err := parse.Parse(data)
	if err != nil {
		return err
	}
	d.node = node
	return nil
}

// jsonBytes is the compact wire rendering used by patching and diffing.
func jsonBytes(node *ir.Node) []byte {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.Compact()); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
