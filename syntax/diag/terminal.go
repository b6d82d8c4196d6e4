package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FormatForTerminal renders the error with ANSI colors for interactive
// use. The layout is identical to Error(); only coloring differs, so
// tools that strip colors recover the canonical message byte-for-byte.
func (e *Error) FormatForTerminal(noColor bool) string {
	header := color.New(color.FgRed, color.Bold)
	gutterColor := color.New(color.FgBlue)
	caret := color.New(color.FgRed)

	if noColor {
		header.DisableColor()
		gutterColor.DisableColor()
		caret.DisableColor()
	}

	var b strings.Builder

	width := len(fmt.Sprintf("%d", e.Line))
	gutter := strings.Repeat(" ", width)

	header.Fprintf(&b, " --> HCL parse error in line %d, column %d\n", e.Line, e.Column)
	gutterColor.Fprintf(&b, "%s |\n", gutter)
	gutterColor.Fprintf(&b, "%d |", e.Line)
	fmt.Fprintf(&b, " %s\n", e.SourceLine)
	gutterColor.Fprintf(&b, "%s |", gutter)
	caret.Fprintf(&b, "%s^---\n", strings.Repeat(" ", e.Column))
	gutterColor.Fprintf(&b, "%s |\n", gutter)
	gutterColor.Fprintf(&b, "%s =", gutter)
	fmt.Fprintf(&b, " %s", e.message())

	return b.String()
}
