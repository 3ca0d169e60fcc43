package markdown

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnclosedBlock reports a parse whose terminal block had no closing
// fence under the UnclosedError policy.
var ErrUnclosedBlock = errors.New("last code block is unclosed")

// MissingPathError reports a fenced block with no resolvable path in either
// search location. Line is the 1-based line number of the opening fence.
type MissingPathError struct {
	Line     int    // opening fence line number
	Fence    string // the opening fence line as written
	Snippet  string // first line of the block's text
	Template string // the active path template pattern
}

// Error renders a positional diagnostic showing both remediation options:
// a path line above the fence, or a commented path as the first line of
// the block.
func (e *MissingPathError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "could not find a path for the code block at line %d\n", e.Line)
	b.WriteString("     |\n")
	fmt.Fprintf(&b, "%4d | %s\n", e.Line, e.Fence)
	fmt.Fprintf(&b, "%4d | %s\n", e.Line+1, e.Snippet)
	b.WriteString("     | ^^^^^ expected a path above or below the opening fence\n")
	b.WriteString("\n")
	b.WriteString("option 1: add a path line above the code block\n")
	b.WriteString("     |\n")
	fmt.Fprintf(&b, "+%3d | %s\n", e.Line-1, e.Template)
	fmt.Fprintf(&b, "%4d | %s\n", e.Line, e.Fence)
	fmt.Fprintf(&b, "%4d | %s\n", e.Line+1, e.Snippet)
	b.WriteString("\n")
	b.WriteString("option 2: add a commented path as the first line of the block\n")
	b.WriteString("     |\n")
	fmt.Fprintf(&b, "%4d | %s\n", e.Line, e.Fence)
	fmt.Fprintf(&b, "+%3d | # %s\n", e.Line+1, e.Template)
	fmt.Fprintf(&b, "%4d | %s", e.Line+1, e.Snippet)
	return b.String()
}
