package dig

import (
	"errors"
	"slices"
	"testing"

	"github.com/maydoc/go-maydoc/ir"
	"github.com/maydoc/go-maydoc/opt"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Path
	}{
		{"empty", "", nil},
		{"single field", "a", Path{Key("a")}},
		{"dotted fields", "a.b.c", Path{Key("a"), Key("b"), Key("c")}},
		{"index", "[0]", Path{Index(0)}},
		{"field then index", "a[0]", Path{Key("a"), Index(0)}},
		{"index then field", "[1].b", Path{Index(1), Key("b")}},
		{"double index", "a[12][3]", Path{Key("a"), Index(12), Index(3)}},
		{"negative index", "a[-1]", Path{Key("a"), Index(-1)}},
		{"quoted field", `"a.b".c`, Path{Key("a.b"), Key("c")}},
		{"quoted with escape", `"a\"b"`, Path{Key(`a"b`)}},
		{"quoted after dot", `a."x y"`, Path{Key("a"), Key("x y")}},
		{"mixed", `applications[0].name`, Path{Key("applications"), Index(0), Key("name")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.path, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParsePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"leading dot", ".a"},
		{"trailing dot", "a."},
		{"double dot", "a..b"},
		{"dot before index", "a.[0]"},
		{"unclosed index", "a[0"},
		{"bad index", "a[x]"},
		{"empty index", "a[]"},
		{"wildcard index", "a[*]"},
		{"junk after index", "a[0]x"},
		{"junk after quote", `"a"x`},
		{"unterminated quote", `"a`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePath(tt.path); !errors.Is(err, ErrPath) {
				t.Errorf("ParsePath(%q) error = %v, want ErrPath", tt.path, err)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{"empty", nil, ""},
		{"fields and indices", Path{Key("a"), Index(0), Key("b")}, "a[0].b"},
		{"leading index", Path{Index(2), Key("b")}, "[2].b"},
		{"quoted field", Path{Key("a.b"), Key("c")}, `"a.b".c`},
		{"spacey field", Path{Key("x y")}, `"x y"`},
		{"empty field", Path{Key("")}, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	paths := []Path{
		{Key("a"), Key("b")},
		{Key("applications"), Index(0), Key("name")},
		{Index(0), Index(1)},
		{Key("a.b"), Index(3), Key("x y")},
		{Key(`has"quote`)},
	}
	for _, p := range paths {
		t.Run(p.String(), func(t *testing.T) {
			got, err := ParsePath(p.String())
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", p.String(), err)
			}
			if !slices.Equal(got, p) {
				t.Errorf("round trip of %q = %v, want %v", p.String(), got, p)
			}
		})
	}
}

func TestPathTo(t *testing.T) {
	doc := testDoc()
	steps := Path{Key("applications"), Index(0), Key("name")}

	node := opt.Must[*ir.Node](Dig(doc, steps...))
	got := PathTo(node)
	if !slices.Equal(got, steps) {
		t.Errorf("PathTo() = %v, want %v", got, steps)
	}

	// PathTo inverts Dig.
	back := opt.Must[*ir.Node](Dig(doc, got...))
	if back != node {
		t.Errorf("Dig(root, PathTo(node)...) = %v, want the same node", back)
	}

	if got := PathTo(doc); len(got) != 0 {
		t.Errorf("PathTo(root) = %v, want empty", got)
	}
	if got := PathTo(nil); len(got) != 0 {
		t.Errorf("PathTo(nil) = %v, want empty", got)
	}
}
