package parse

import (
	"errors"
	"testing"

	"github.com/maydoc/go-maydoc/ir"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		typ  ir.Type
		want any
	}{
		{"string", `"hi"`, ir.StringType, "hi"},
		{"bare string", `hi`, ir.StringType, "hi"},
		{"bool", `true`, ir.BoolType, true},
		{"negative int", `-5`, ir.IntType, -5},
		{"float", `10.7`, ir.FloatType, 10.7},
		{"null", `null`, ir.NullType, nil},
		{"empty input", ``, ir.NullType, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := String(tt.in)
			if err != nil {
				t.Fatalf("String(%q) error = %v", tt.in, err)
			}
			if node.Type != tt.typ {
				t.Errorf("Type = %v, want %v", node.Type, tt.typ)
			}
			if !node.EqualValue(tt.want) {
				t.Errorf("parsed %q = %v, want %v", tt.in, ir.ToAny(node), tt.want)
			}
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	// The decoder may pick the signed or unsigned variant; the value is
	// what matters.
	node, err := String(`42`)
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if !node.Type.IsNumber() {
		t.Fatalf("Type = %v, want a number", node.Type)
	}
	if node.Type == ir.FloatType {
		t.Fatalf("Type = %v, want an integer variant", node.Type)
	}
	if !node.EqualValue(42) {
		t.Errorf("parsed 42 = %v", ir.ToAny(node))
	}
}

func TestParseJSONDocument(t *testing.T) {
	doc, err := String(`{"applications": [{"name": "cool programming", "version": 2}], "ok": true}`)
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if doc.Type != ir.ObjectType {
		t.Fatalf("Type = %v, want ObjectType", doc.Type)
	}
	apps := ir.Get(doc, "applications")
	if apps == nil || apps.Type != ir.ArrayType {
		t.Fatalf("applications = %v, want array", apps)
	}
	name := ir.Get(ir.At(apps, 0), "name")
	if name == nil || name.String != "cool programming" {
		t.Errorf("name = %v, want cool programming", name)
	}
	version := ir.Get(ir.At(apps, 0), "version")
	if version == nil || !version.EqualValue(2) {
		t.Errorf("version = %v, want 2", version)
	}
}

func TestParseYAMLDocument(t *testing.T) {
	doc, err := String("applications:\n  - name: cool programming\nratio: 10.7\n")
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	name := ir.Get(ir.At(ir.Get(doc, "applications"), 0), "name")
	if name == nil || name.String != "cool programming" {
		t.Errorf("name = %v, want cool programming", name)
	}
	if ratio := ir.Get(doc, "ratio"); ratio == nil || !ratio.EqualValue(10.7) {
		t.Errorf("ratio = %v, want 10.7", ratio)
	}
}

func TestParseKeepsFieldOrder(t *testing.T) {
	doc, err := String("zebra: 1\nalpha: 2\nmiddle: 3\n")
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := []string{"zebra", "alpha", "middle"}
	if len(doc.Fields) != len(want) {
		t.Fatalf("len(Fields) = %d, want %d", len(doc.Fields), len(want))
	}
	for i, field := range want {
		if doc.Fields[i].String != field {
			t.Errorf("Fields[%d] = %q, want %q", i, doc.Fields[i].String, field)
		}
	}
}

func TestParseNestedOrder(t *testing.T) {
	doc, err := String(`{"outer": {"b": 1, "a": 2}}`)
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	outer := ir.Get(doc, "outer")
	if outer == nil || len(outer.Fields) != 2 {
		t.Fatalf("outer = %v, want 2 fields", outer)
	}
	if outer.Fields[0].String != "b" || outer.Fields[1].String != "a" {
		t.Errorf("outer fields = [%q, %q], want [b, a]",
			outer.Fields[0].String, outer.Fields[1].String)
	}
}

func TestParseNonStringKeys(t *testing.T) {
	doc, err := String("1: one\ntrue: yes\n")
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got := ir.Get(doc, "1"); got == nil || got.String != "one" {
		t.Errorf("field 1 = %v, want one", got)
	}
	if got := ir.Get(doc, "true"); got == nil || got.String != "yes" {
		t.Errorf("field true = %v, want yes", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unclosed object", `{"a": 1`},
		{"unclosed array", `[1, 2`},
		{"tab indent", "a:\n\t- 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", tt.in, err)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse did not panic on bad input")
		}
	}()
	MustParse([]byte(`{"a":`))
}
