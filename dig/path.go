package dig

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maydoc/go-maydoc/ir"
)

// ErrPath reports a path string that does not parse.
var ErrPath = errors.New("bad path")

// Path is a sequence of steps from a root. Being a plain slice, it spreads
// directly into Dig:
//
//	p, _ := dig.ParsePath("applications[0].name")
//	dig.Dig(root, p...)
type Path []Step

// String renders the path in the compact syntax ParsePath accepts:
// fields separated by dots, indices in brackets, as in "a[0].b". Fields
// containing path syntax come out double-quoted. The empty path renders as
// the empty string.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 && s.kind == keyKind {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// ParsePath parses the compact path syntax: "a.b" selects field b of field
// a, "a[0]" the first element of array a, and segments chain as in
// "applications[0].name". Fields may be double-quoted to include dots,
// brackets or spaces. The empty string is the empty path, selecting the
// root. There are no wildcards.
func ParsePath(path string) (Path, error) {
	var steps Path
	rest := path
	for rest != "" {
		switch rest[0] {
		case '.':
			if len(steps) == 0 {
				return nil, fmt.Errorf("%w: leading '.' in %q", ErrPath, path)
			}
			rest = rest[1:]
			if rest == "" {
				return nil, fmt.Errorf("%w: trailing '.' in %q", ErrPath, path)
			}
			if rest[0] == '[' || rest[0] == '.' {
				return nil, fmt.Errorf("%w: empty field in %q", ErrPath, path)
			}
			field, tail, err := parseField(rest, path)
			if err != nil {
				return nil, err
			}
			steps = append(steps, Key(field))
			rest = tail
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: missing ']' in %q", ErrPath, path)
			}
			i, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("%w: index %q in %q", ErrPath, rest[1:end], path)
			}
			steps = append(steps, Index(i))
			rest = rest[end+1:]
		default:
			if len(steps) != 0 {
				return nil, fmt.Errorf("%w: expected '.' or '[' at %q in %q", ErrPath, rest, path)
			}
			field, tail, err := parseField(rest, path)
			if err != nil {
				return nil, err
			}
			steps = append(steps, Key(field))
			rest = tail
		}
	}
	return steps, nil
}

// parseField consumes one field segment: a double-quoted string, or a bare
// name running to the next '.' or '['.
func parseField(frag, path string) (field, rest string, err error) {
	if frag[0] == '"' {
		end := quotedEnd(frag)
		if end < 0 {
			return "", "", fmt.Errorf("%w: unterminated quote in %q", ErrPath, path)
		}
		field, err = strconv.Unquote(frag[:end+1])
		if err != nil {
			return "", "", fmt.Errorf("%w: field %q in %q", ErrPath, frag[:end+1], path)
		}
		return field, frag[end+1:], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	return frag[:i], frag[i:], nil
}

// quotedEnd returns the offset of the closing quote of a double-quoted
// string starting at s[0], or -1.
func quotedEnd(s string) int {
	esc := false
	for i := 1; i < len(s); i++ {
		switch {
		case esc:
			esc = false
		case s[i] == '\\':
			esc = true
		case s[i] == '"':
			return i
		}
	}
	return -1
}

// PathTo reconstructs the path from a node's root down to the node, the
// inverse of Dig: Dig(node.Root(), PathTo(node)...) reaches node again.
// PathTo of a root is the empty path.
func PathTo(node *ir.Node) Path {
	var steps Path
	for n := node; n != nil && n.Parent != nil; n = n.Parent {
		if n.Parent.Type == ir.ObjectType {
			steps = append(steps, Key(n.ParentField))
		} else {
			steps = append(steps, Index(n.ParentIndex))
		}
	}
	slices.Reverse(steps)
	return steps
}
