// Package diag renders structured HCL parse failures as compiler-grade
// pointer-annotated messages.
package diag

import (
	"fmt"
	"strings"
)

// Error is a structured parse error. It carries the exact failure
// position, the production category that failed, and the expected
// alternatives at that point, so that embedding tools can build their
// own presentation. Error() renders the canonical message shape:
//
//	 --> HCL parse error in line 2, column 5
//	  |
//	2 | bar [
//	  |     ^---
//	  |
//	  = invalid structure; expected `{`, `=`, `"` or identifier
type Error struct {
	// Line and Column are 1-indexed; Column counts characters.
	Line   int
	Column int
	// Offset is the byte offset of the failure in the input.
	Offset int
	// Category names the grammar production that failed, e.g.
	// "invalid structure" or "invalid traversal operator".
	Category string
	// Expected lists the accepted alternatives at the failure point,
	// already rendered (literal terminals in backticks), deduplicated,
	// in first-encountered order.
	Expected []string
	// Detail replaces the expected clause for failures that have no
	// alternative set, such as the nesting depth limit.
	Detail string
	// SourceLine is the full physical line containing the failure.
	SourceLine string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	width := len(fmt.Sprintf("%d", e.Line))
	gutter := strings.Repeat(" ", width)

	fmt.Fprintf(&b, " --> HCL parse error in line %d, column %d\n", e.Line, e.Column)
	fmt.Fprintf(&b, "%s |\n", gutter)
	fmt.Fprintf(&b, "%d | %s\n", e.Line, e.SourceLine)
	fmt.Fprintf(&b, "%s |%s^---\n", gutter, strings.Repeat(" ", e.Column))
	fmt.Fprintf(&b, "%s |\n", gutter)
	fmt.Fprintf(&b, "%s = %s", gutter, e.message())

	return b.String()
}

func (e *Error) message() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s; %s", e.Category, e.Detail)
	}
	return fmt.Sprintf("%s; expected %s", e.Category, ExpectedList(e.Expected))
}

// ExpectedList joins rendered alternatives following natural-language
// listing: items separated by ", " with a final " or " before the last.
func ExpectedList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
