package maydoc

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/maydoc/go-maydoc/debug"
	"github.com/maydoc/go-maydoc/parse"
)

// ErrPatch reports a patch that does not decode or does not apply.
var ErrPatch = errors.New("patch error")

// Patch applies an RFC 6902 JSON patch, given as YAML or JSON text, and
// returns the patched document. The receiver is unchanged. The document
// round-trips through its compact JSON form, so field order follows the
// patch engine's output.
func (d *Document) Patch(patch []byte) (*Document, error) {
	if debug.Patch() {
		debug.Logf("patch\n%v\nwith %s\n", d.node, patch)
	}
	pnode, err := parse.Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	ops, err := jsonpatch.DecodePatch(jsonBytes(pnode))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := ops.Apply(jsonBytes(d.node))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	node, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Document{node: node}, nil
}

// MergePatch applies an RFC 7386 merge patch, given as YAML or JSON text,
// and returns the patched document. The receiver is unchanged.
func (d *Document) MergePatch(patch []byte) (*Document, error) {
	if debug.Patch() {
		debug.Logf("merge patch\n%v\nwith %s\n", d.node, patch)
	}
	pnode, err := parse.Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := jsonpatch.MergePatch(jsonBytes(d.node), jsonBytes(pnode))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	node, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Document{node: node}, nil
}
