package encode

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact selects a single-line rendering with no whitespace and no
// trailing newline.
func Compact() EncodeOption {
	return func(es *EncState) { es.compact = true }
}

// EncodeColors colors the output with c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// AutoColors colors the output only when w is a terminal.
func AutoColors(w io.Writer) EncodeOption {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return func(*EncState) {}
	}
	return EncodeColors(NewColors())
}
