package diag

import (
	"testing"
)

// TestErrorRendering tests the canonical message shape
func TestErrorRendering(t *testing.T) {
	err := &Error{
		Line:       2,
		Column:     5,
		Offset:     12,
		Category:   "invalid structure",
		Expected:   []string{"`{`", "`=`", "`\"`", "identifier"},
		SourceLine: "bar [",
	}

	expected := ` --> HCL parse error in line 2, column 5
  |
2 | bar [
  |     ^---
  |
  = invalid structure; expected ` + "`{`, `=`, `\"`" + ` or identifier`

	if err.Error() != expected {
		t.Errorf("expected:\n%s\n\ngot:\n%s", expected, err.Error())
	}
}

// TestGutterWidth tests that the gutter widens with the line number
func TestGutterWidth(t *testing.T) {
	err := &Error{
		Line:       120,
		Column:     1,
		Category:   "invalid structure",
		Expected:   []string{"identifier"},
		SourceLine: "]",
	}

	expected := ` --> HCL parse error in line 120, column 1
    |
120 | ]
    | ^---
    |
    = invalid structure; expected identifier`

	if err.Error() != expected {
		t.Errorf("expected:\n%s\n\ngot:\n%s", expected, err.Error())
	}
}

// TestDetailMessage tests the detail form used when no expected set
// applies.
func TestDetailMessage(t *testing.T) {
	err := &Error{
		Line:       1,
		Column:     3,
		Category:   "invalid expression",
		Detail:     "expression nesting exceeds the supported depth",
		SourceLine: "x = ((((",
	}

	if got := err.message(); got != "invalid expression; expression nesting exceeds the supported depth" {
		t.Errorf("unexpected message: %q", got)
	}
}

// TestExpectedList tests natural-language joining of alternatives
func TestExpectedList(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{"empty", nil, ""},
		{"one", []string{"`=`"}, "`=`"},
		{"two", []string{"letter", "digit"}, "letter or digit"},
		{"three", []string{"`}`", "`,`", "newline"}, "`}`, `,` or newline"},
		{"four", []string{"`{`", "`=`", "`\"`", "identifier"}, "`{`, `=`, `\"` or identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpectedList(tt.items); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestTerminalRenderingMatchesPlain tests that the colored rendering
// with colors disabled is byte-identical to Error().
func TestTerminalRenderingMatchesPlain(t *testing.T) {
	err := &Error{
		Line:       2,
		Column:     5,
		Category:   "invalid structure",
		Expected:   []string{"`{`", "`=`", "`\"`", "identifier"},
		SourceLine: "bar [",
	}

	if got := err.FormatForTerminal(true); got != err.Error() {
		t.Errorf("expected:\n%s\n\ngot:\n%s", err.Error(), got)
	}
}
