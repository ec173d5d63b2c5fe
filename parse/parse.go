package parse

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/maydoc/go-maydoc/ir"
)

// ErrParse reports input that does not parse as a document.
var ErrParse = errors.New("parse error")

// Parse decodes a YAML or JSON document into a node tree. Object field
// order follows the input. Decoding is delegated to the YAML parser, which
// accepts JSON as a subset.
func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	node, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return node, nil
}

// String parses a document given as a string.
func String(s string) (*ir.Node, error) {
	return Parse([]byte(s))
}

// MustParse is like Parse but panics on error. Intended for fixtures and
// tests.
func MustParse(d []byte) *ir.Node {
	node, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return node
}
