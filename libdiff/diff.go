package libdiff

import (
	"strings"

	"github.com/minijson-format/go-minijson/encode"
	"github.com/minijson-format/go-minijson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes a line-based diff between the canonical renderings of two
// value trees. Because object members render in sorted key order, member
// order never shows up as a difference.
func Diff(from, to *ir.Value) []diffpatch.Diff {
	a := encode.Dump(from, "  ", 0) + "\n"
	b := encode.Dump(to, "  ", 0) + "\n"
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(ca, cb, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Text renders a diff with "-"/"+" line markers. Equal trees yield "".
func Text(from, to *ir.Value) string {
	if ir.Equal(from, to) {
		return ""
	}
	var sb strings.Builder
	for _, d := range Diff(from, to) {
		var marker string
		switch d.Type {
		case diffpatch.DiffDelete:
			marker = "- "
		case diffpatch.DiffInsert:
			marker = "+ "
		case diffpatch.DiffEqual:
			marker = "  "
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(marker)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Pretty renders a diff with terminal colors (inserts green, deletes red).
func Pretty(from, to *ir.Value) string {
	if ir.Equal(from, to) {
		return ""
	}
	diffCfg := diffpatch.New()
	return diffCfg.DiffPrettyText(Diff(from, to))
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
