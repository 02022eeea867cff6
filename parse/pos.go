package parse

import (
	"bytes"
	"strings"
)

// LineCol converts a byte offset into zero-based line and column numbers.
func LineCol(d []byte, off int) (line, col int) {
	if off < 0 {
		off = 0
	}
	if off > len(d) {
		off = len(d)
	}
	line = bytes.Count(d[:off], []byte{'\n'})
	col = off - (bytes.LastIndexByte(d[:off], '\n') + 1)
	return line, col
}

// Context renders the source line enclosing off together with a second line
// whose caret sits under the offset:
//
//	{"a": }
//	      ^
//
// It is a pure function of the buffer and offset and has no tie to parse
// failure; offsets at or past the end of the buffer are clamped.
func Context(d []byte, off int) string {
	if off < 0 {
		off = 0
	}
	if off > len(d) {
		off = len(d)
	}
	lineStart := off
	for lineStart > 0 && (lineStart >= len(d) || d[lineStart] != '\n') {
		lineStart--
	}
	if lineStart < off && lineStart < len(d) && d[lineStart] == '\n' {
		lineStart++
	}
	lineEnd := lineStart
	for lineEnd < len(d) && d[lineEnd] != '\n' {
		lineEnd++
	}
	return string(d[lineStart:lineEnd]) + "\n" + strings.Repeat(" ", off-lineStart) + "^"
}
