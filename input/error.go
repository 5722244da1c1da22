package input

import (
	"fmt"
	"strings"
)

// SyntaxError reports the farthest point at which no grammar rule could
// match, together with the terminals that were expected there.
type SyntaxError struct {
	Source   string
	Offset   int
	Line     int
	Col      int
	Expected []string
}

func (e *SyntaxError) Error() string {
	src := e.Source
	if src == "" {
		src = "input"
	}
	return fmt.Sprintf("%s:%d:%d: expecting %s",
		src, e.Line, e.Col, strings.Join(e.Expected, " or "))
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(text string, offset int) (line, col int) {
	line = 1
	lineStart := 0
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}
