package encode

import (
	"encoding/hex"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/maydoc/go-maydoc/ir"
)

type EncState struct {
	depth, indent int
	compact       bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as JSON. The default layout is pretty-printed
// with a two-space indent and a trailing newline; Compact selects a
// single-line rendering without any whitespace.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.compact {
		return nil
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(node, w, es, "null")
	case ir.BoolType:
		return writeValue(node, w, es, strconv.FormatBool(node.Bool))
	case ir.IntType:
		return writeValue(node, w, es, strconv.FormatInt(node.Int64, 10))
	case ir.UintType:
		return writeValue(node, w, es, strconv.FormatUint(node.Uint64, 10))
	case ir.FloatType:
		return writeValue(node, w, es, formatFloat(node.Float64))
	case ir.StringType:
		return writeValue(node, w, es, quoteJSON(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	}
	panic("impossible production")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeSep(node, w, es, "{}")
	}
	if err := writeSep(node, w, es, "{"); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if err := writeSep(node, w, es, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		field := quoteJSON(node.Fields[i].String)
		if err := writeString(w, applyColor(es, node.Type, FieldColor, field)); err != nil {
			return err
		}
		colon := ": "
		if es.compact {
			colon = ":"
		}
		if err := writeSep(node, w, es, colon); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(node, w, es, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(node, w, es, "[]")
	}
	if err := writeSep(node, w, es, "["); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeSep(node, w, es, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(node, w, es, "]")
}

func writeValue(node *ir.Node, w io.Writer, es *EncState, s string) error {
	return writeString(w, applyColor(es, node.Type, ValueColor, s))
}

func writeSep(node *ir.Node, w io.Writer, es *EncState, s string) error {
	return writeString(w, applyColor(es, node.Type, SepColor, s))
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

// formatFloat renders a float as a JSON number. NaN and the infinities have
// no JSON form and come out as null.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	switch s {
	case "NaN", "+Inf", "-Inf":
		return "null"
	}
	return s
}

// quoteJSON escapes v per the JSON grammar. strconv.Quote is close but
// emits \x escapes, which JSON does not accept, so the escaping is done
// here: the short escapes for the usual control characters and \u00XX for
// the rest.
func quoteJSON(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs := []byte{byte(r >> 8), byte(r)}
				cps := hex.AppendEncode(nil, ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
