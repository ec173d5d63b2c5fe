package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/maydoc/go-maydoc/encode"
	"github.com/maydoc/go-maydoc/ir"
)

// Logf writes to stderr. Node arguments render as pretty JSON, maps and
// slices through json.MarshalIndent; other arguments pass through.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
