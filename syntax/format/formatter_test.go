package format

import (
	"testing"

	"github.com/hclkit-lang/hclkit/builder"
	"github.com/hclkit-lang/hclkit/syntax/parser"
)

func formatSource(t *testing.T, src string) string {
	t.Helper()
	body, err := parser.ParseBody(src)
	if err != nil {
		t.Fatalf("ParseBody(%q) failed:\n%v", src, err)
	}
	return ToString(body)
}

// TestFormatAttributes tests canonical attribute rendering
func TestFormatAttributes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"normalized spacing", "foo=1", "foo = 1\n"},
		{"underscore ident", `_foo = "bar"`, "_foo = \"bar\"\n"},
		{"null", "a = null", "a = null\n"},
		{"bools", "a = true\nb = false", "a = true\nb = false\n"},
		{"negative", "a = -5", "a = -5\n"},
		{"float", "a = 3.14", "a = 3.14\n"},
		{"float with integral value", "a = 1.0", "a = 1.0\n"},
		{"exponent", "a = 1e21", "a = 1e+21\n"},
		{"string escapes", `a = "x\ny"`, "a = \"x\\ny\"\n"},
		{"kept interpolation escape", `a = "$${x}"`, "a = \"$${x}\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSource(t, tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestFormatBlocks tests block layout
func TestFormatBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "b{}", "b {}\n"},
		{"empty with newline body", "b {\n}\n", "b {}\n"},
		{
			"labels keep their kind",
			`resource "aws_instance" web { count = 1 }`,
			"resource \"aws_instance\" web {\n  count = 1\n}\n",
		},
		{
			"nested indentation",
			"outer{\ninner{\na=1\n}\n}",
			"outer {\n  inner {\n    a = 1\n  }\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSource(t, tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestFormatObjects tests compact versus expanded object layout
func TestFormatObjects(t *testing.T) {
	t.Run("attribute value expands", func(t *testing.T) {
		got := formatSource(t, `x = { foo = "bar", baz = 1 }`)
		expected := "x = {\n  foo = \"bar\"\n  baz = 1\n}\n"
		if got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("nested objects stay expanded", func(t *testing.T) {
		got := formatSource(t, "x = { a = { b = 1 } }")
		expected := "x = {\n  a = {\n    b = 1\n  }\n}\n"
		if got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("compact in function args", func(t *testing.T) {
		got := formatSource(t, `x = func([1, 2, 3], { foo = "bar", baz = "qux" })`)
		expected := "x = func([1, 2, 3], { foo = \"bar\", baz = \"qux\" })\n"
		if got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("compact in tuples", func(t *testing.T) {
		got := formatSource(t, "x = [{ a = 1 }]")
		expected := "x = [{ a = 1 }]\n"
		if got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("empty stays inline", func(t *testing.T) {
		got := formatSource(t, "x = {}")
		if got != "x = {}\n" {
			t.Errorf("Expected %q, got %q", "x = {}\n", got)
		}
	})

	t.Run("quoted keys", func(t *testing.T) {
		got := formatSource(t, `x = foo({ "bar" = baz() })`)
		expected := "x = foo({ \"bar\" = baz() })\n"
		if got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})
}

// TestFormatExpressions tests expression rendering
func TestFormatExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tuple", "x = [1,2,3]", "x = [1, 2, 3]\n"},
		{"binary spacing", "x = 1+2*3", "x = 1 + 2 * 3\n"},
		{"parens kept", "x = (1+2)*3", "x = (1 + 2) * 3\n"},
		{"unary tight", "x = !a", "x = !a\n"},
		{"conditional", "x = a?1:2", "x = a ? 1 : 2\n"},
		{"traversal", "x = a.b[0].*", "x = a.b[0].*\n"},
		{"full splat", "x = a[*].id", "x = a[*].id\n"},
		{"dot index split", "x = a.0.1", "x = a.0.1\n"},
		{"call expand", "x = f(a...)", "x = f(a...)\n"},
		{"multiline call collapses", "x = f(\n  1,\n  2,\n)", "x = f(1, 2)\n"},
		{"template", `x = "a ${b} c"`, "x = \"a ${b} c\"\n"},
		{"template call", `x = "${f("y")}"`, "x = \"${f(\"y\")}\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSource(t, tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestFormatHeredoc tests heredoc rendering
func TestFormatHeredoc(t *testing.T) {
	got := formatSource(t, "x = <<EOF\nhello ${name}\nEOF\n")
	expected := "x = <<EOF\nhello ${name}\nEOF\n"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	got = formatSource(t, "x = <<-EOT\n  indented\n  EOT\n")
	expected = "x = <<-EOT\n  indented\nEOT\n"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

// TestFormatBuiltTree tests formatting a programmatically built tree
func TestFormatBuiltTree(t *testing.T) {
	body := builder.Body().
		Attribute("name", builder.String("web")).
		Block(builder.Block("resource").
			Label("aws_instance").
			Attribute("count", builder.Int(2)).
			Attribute("tags", builder.Object().
				Item("env", builder.String("prod")).
				Build()).
			Build()).
		Build()

	expected := `name = "web"
resource "aws_instance" {
  count = 2
  tags = {
    env = "prod"
  }
}
`
	if got := ToString(body); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

// TestFormatExpressionNode tests formatting a bare expression node
func TestFormatExpressionNode(t *testing.T) {
	call := builder.FuncCall("min").
		Arg(builder.Int(1)).
		Arg(builder.Variable("rest")).
		ExpandFinal().
		Build()

	if got := ToString(call); got != "min(1, rest...)" {
		t.Errorf("Expected %q, got %q", "min(1, rest...)", got)
	}
}
