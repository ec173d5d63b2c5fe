package dig

import (
	"strconv"
	"unicode"
)

// Step selects one child of a node: a named field of an object or an
// indexed element of an array. Build steps with Key and Index.
type Step struct {
	key   string
	index int
	kind  stepKind
}

type stepKind int

const (
	keyKind stepKind = iota
	indexKind
)

// Key returns a step selecting the named field of an object.
func Key(field string) Step {
	return Step{key: field, kind: keyKind}
}

// Index returns a step selecting the i-th element of an array.
func Index(i int) Step {
	return Step{index: i, kind: indexKind}
}

// IsKey reports whether the step selects an object field.
func (s Step) IsKey() bool {
	return s.kind == keyKind
}

// IsIndex reports whether the step selects an array element.
func (s Step) IsIndex() bool {
	return s.kind == indexKind
}

// String renders the step as a path segment: the field name, quoted when it
// contains path syntax, or the index in brackets.
func (s Step) String() string {
	if s.kind == indexKind {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	if fieldNeedsQuote(s.key) {
		return strconv.Quote(s.key)
	}
	return s.key
}

// fieldNeedsQuote reports whether a field name must be quoted in a path
// string to survive a round trip through ParsePath.
func fieldNeedsQuote(field string) bool {
	if field == "" {
		return true
	}
	for _, r := range field {
		switch {
		case r == '.' || r == '[' || r == ']' || r == '"' || r == '\\':
			return true
		case unicode.IsSpace(r) || unicode.IsControl(r):
			return true
		}
	}
	return false
}
