package cooklang

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal parse diagnostic tied to a source line. Warnings
// are returned alongside the recipe rather than printed, so callers decide
// whether to surface, log, or ignore them.
type Warning struct {
	Line    int // 1-based line in the original source
	Message string
}

// Format renders the warning with its source-line context:
//
//	name:3: warning: ingredient has empty name
//	  3 | Add @{} to the pan.
func (w Warning) Format(name, src string) string {
	return annotate(name, src, w.Line, "warning", w.Message)
}

// ParseError is a fatal syntax error. Like warnings it carries enough
// context to be printed with a source-line annotation.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Format renders the error with its source-line context, in the same shape
// as Warning.Format.
func (e *ParseError) Format(name, src string) string {
	return annotate(name, src, e.Line, "error", e.Message)
}

func annotate(name, src string, line int, kind, message string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d: %s: %s", name, line, kind, message)

	lines := strings.Split(src, "\n")
	if line >= 1 && line <= len(lines) {
		fmt.Fprintf(&sb, "\n  %d | %s", line, lines[line-1])
	}
	return sb.String()
}
