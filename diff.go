package maydoc

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/maydoc/go-maydoc/encode"
)

// Diff returns a line diff between the pretty JSON renderings of two
// documents, with each line prefixed "+ ", "- " or "  ". Documents that
// render identically diff to the empty string.
func (d *Document) Diff(other *Document) string {
	from := encode.MustString(d.node) + "\n"
	to := encode.MustString(other.node) + "\n"
	if from == to {
		return ""
	}

	diffCfg := diffpatch.New()
	fromChars, toChars, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(fromChars, toChars, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
