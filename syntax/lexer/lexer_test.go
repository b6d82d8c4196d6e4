package lexer

import (
	"testing"
)

// TestPunctuation tests tokenization of delimiters and operators
func TestPunctuation(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"{", TOKEN_LBRACE},
		{"}", TOKEN_RBRACE},
		{"[", TOKEN_LBRACKET},
		{"]", TOKEN_RBRACKET},
		{"(", TOKEN_LPAREN},
		{")", TOKEN_RPAREN},
		{",", TOKEN_COMMA},
		{".", TOKEN_DOT},
		{":", TOKEN_COLON},
		{"?", TOKEN_QUESTION},
		{"=", TOKEN_EQUAL},
		{"!", TOKEN_BANG},
		{"<", TOKEN_LESS},
		{">", TOKEN_GREATER},
		{"+", TOKEN_PLUS},
		{"-", TOKEN_MINUS},
		{"*", TOKEN_STAR},
		{"/", TOKEN_SLASH},
		{"%", TOKEN_PERCENT},
		{"...", TOKEN_ELLIPSIS},
		{"==", TOKEN_EQUAL_EQUAL},
		{"!=", TOKEN_BANG_EQUAL},
		{"<=", TOKEN_LESS_EQUAL},
		{">=", TOKEN_GREATER_EQUAL},
		{"&&", TOKEN_AMPERSAND_AMPERSAND},
		{"||", TOKEN_PIPE_PIPE},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := New(tt.input).ScanTokens()

			if len(tokens) != 2 { // token + EOF
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}
			if tokens[0].Type != tt.expected {
				t.Errorf("Expected token type %v, got %v", tt.expected, tokens[0].Type)
			}
			if tokens[0].Lexeme != tt.input {
				t.Errorf("Expected lexeme %q, got %q", tt.input, tokens[0].Lexeme)
			}
		})
	}
}

// TestIdentifiers tests identifier tokenization including hyphens
func TestIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple", "foo"},
		{"underscore start", "_foo"},
		{"with digits", "foo123"},
		{"with hyphen", "foo-bar"},
		{"unicode", "übung"},
		{"single underscore", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := New(tt.input).ScanTokens()

			if len(tokens) != 2 {
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}
			if tokens[0].Type != TOKEN_IDENTIFIER {
				t.Errorf("Expected TOKEN_IDENTIFIER, got %v", tokens[0].Type)
			}
			if tokens[0].Lexeme != tt.input {
				t.Errorf("Expected lexeme %q, got %q", tt.input, tokens[0].Lexeme)
			}
		})
	}
}

// TestNumbers tests numeric literal tokenization
func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"0", int64(0)},
		{"42", int64(42)},
		{"1234567890", int64(1234567890)},
		{"3.14", 3.14},
		{"0.5", 0.5},
		{"1e3", 1000.0},
		{"1E3", 1000.0},
		{"2.5e-2", 0.025},
		{"1e+2", 100.0},
		// Beyond int64, falls back to float
		{"99999999999999999999", 1e20},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := New(tt.input).ScanTokens()

			if len(tokens) != 2 {
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}
			if tokens[0].Type != TOKEN_NUMBER {
				t.Fatalf("Expected TOKEN_NUMBER, got %v", tokens[0].Type)
			}
			if tokens[0].Literal != tt.expected {
				t.Errorf("Expected literal %v (%T), got %v (%T)",
					tt.expected, tt.expected, tokens[0].Literal, tokens[0].Literal)
			}
		})
	}
}

// TestStrings tests quoted string tokenization. The literal holds the
// raw inner text; escapes and interpolations stay undecoded.
func TestStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", `""`, ""},
		{"simple", `"hello"`, "hello"},
		{"escaped quote", `"a\"b"`, `a\"b`},
		{"escaped backslash", `"a\\"`, `a\\`},
		{"interpolation", `"${foo}"`, "${foo}"},
		{"interpolation with nested string", `"${f("}")}"`, `${f("}")}`},
		{"interpolation with nested braces", `"${ { a = 1 } }"`, "${ { a = 1 } }"},
		{"escaped interpolation", `"$${literal}"`, "$${literal}"},
		{"directive escape", `"%%{literal}"`, "%%{literal}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := New(tt.input).ScanTokens()

			if len(tokens) != 2 {
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}
			if tokens[0].Type != TOKEN_STRING {
				t.Fatalf("Expected TOKEN_STRING, got %v", tokens[0].Type)
			}
			if tokens[0].Literal != tt.expected {
				t.Errorf("Expected literal %q, got %v", tt.expected, tokens[0].Literal)
			}
		})
	}
}

// TestUnterminatedString tests that a string running to end of line or
// input yields TOKEN_INVALID at the opening quote.
func TestUnterminatedString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"end of input", `"abc`},
		{"end of line", "\"abc\ndef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New(tt.input).Next()
			if tok.Type != TOKEN_INVALID {
				t.Fatalf("Expected TOKEN_INVALID, got %v", tok.Type)
			}
			if tok.Start.Column != 1 {
				t.Errorf("Expected invalid token at column 1, got %d", tok.Start.Column)
			}
		})
	}
}

// TestHeredoc tests heredoc tokenization
func TestHeredoc(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		input := "<<EOF\nhello\nworld\nEOF"
		tokens := New(input).ScanTokens()

		if tokens[0].Type != TOKEN_HEREDOC {
			t.Fatalf("Expected TOKEN_HEREDOC, got %v", tokens[0].Type)
		}
		hv := tokens[0].Literal.(HeredocValue)
		if hv.Marker != "EOF" {
			t.Errorf("Expected marker EOF, got %q", hv.Marker)
		}
		if hv.Indented {
			t.Error("Expected non-indented heredoc")
		}
		if hv.Content != "hello\nworld\n" {
			t.Errorf("Expected content %q, got %q", "hello\nworld\n", hv.Content)
		}
	})

	t.Run("indented introducer", func(t *testing.T) {
		input := "<<-EOT\n  indented\n  EOT"
		tokens := New(input).ScanTokens()

		hv := tokens[0].Literal.(HeredocValue)
		if !hv.Indented {
			t.Error("Expected indented heredoc")
		}
		if hv.Content != "  indented\n" {
			t.Errorf("Expected content %q, got %q", "  indented\n", hv.Content)
		}
	})

	t.Run("unterminated", func(t *testing.T) {
		tok := New("<<EOF\nno terminator").Next()
		if tok.Type != TOKEN_INVALID {
			t.Fatalf("Expected TOKEN_INVALID, got %v", tok.Type)
		}
	})
}

// TestComments tests that all three comment forms produce no tokens
func TestComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"hash", "# comment\nfoo"},
		{"double slash", "// comment\nfoo"},
		{"block", "/* comment */ foo"},
		{"multiline block", "/* line1\nline2 */ foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := New(tt.input).ScanTokens()

			var ident *Token
			for i := range tokens {
				if tokens[i].Type == TOKEN_IDENTIFIER {
					ident = &tokens[i]
					break
				}
				if tokens[i].Type != TOKEN_NEWLINE && tokens[i].Type != TOKEN_EOF {
					t.Fatalf("Unexpected token %v", tokens[i])
				}
			}
			if ident == nil || ident.Lexeme != "foo" {
				t.Fatal("Expected identifier foo after comment")
			}
		})
	}
}

// TestPositions tests byte offsets and character line/column tracking
func TestPositions(t *testing.T) {
	tokens := New("foo = 1\nbar = 2").ScanTokens()

	expected := []struct {
		tokenType TokenType
		offset    int
		line      int
		column    int
	}{
		{TOKEN_IDENTIFIER, 0, 1, 1},
		{TOKEN_EQUAL, 4, 1, 5},
		{TOKEN_NUMBER, 6, 1, 7},
		{TOKEN_NEWLINE, 7, 1, 8},
		{TOKEN_IDENTIFIER, 8, 2, 1},
		{TOKEN_EQUAL, 12, 2, 5},
		{TOKEN_NUMBER, 14, 2, 7},
		{TOKEN_EOF, 15, 2, 8},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		tok := tokens[i]
		if tok.Type != exp.tokenType {
			t.Errorf("token %d: expected type %v, got %v", i, exp.tokenType, tok.Type)
		}
		if tok.Start.Offset != exp.offset || tok.Start.Line != exp.line || tok.Start.Column != exp.column {
			t.Errorf("token %d: expected position %d:%d offset %d, got %d:%d offset %d",
				i, exp.line, exp.column, exp.offset, tok.Start.Line, tok.Start.Column, tok.Start.Offset)
		}
	}
}

// TestMultibytePositions tests that columns count characters while
// offsets count bytes.
func TestMultibytePositions(t *testing.T) {
	// "ü" is two bytes, one character
	tokens := New(`x = "ü" y`).ScanTokens()

	var yTok *Token
	for i := range tokens {
		if tokens[i].Lexeme == "y" {
			yTok = &tokens[i]
		}
	}
	if yTok == nil {
		t.Fatal("Expected identifier y")
	}
	if yTok.Start.Column != 9 {
		t.Errorf("Expected column 9, got %d", yTok.Start.Column)
	}
	if yTok.Start.Offset != 9 {
		t.Errorf("Expected offset 9, got %d", yTok.Start.Offset)
	}
}

// TestNewAt tests sub-lexing with document-global positions
func TestNewAt(t *testing.T) {
	tokens := NewAt("foo.bar", Pos{Offset: 10, Line: 2, Column: 3}).ScanTokens()

	if tokens[0].Start.Offset != 10 || tokens[0].Start.Line != 2 || tokens[0].Start.Column != 3 {
		t.Errorf("Expected start 2:3 offset 10, got %d:%d offset %d",
			tokens[0].Start.Line, tokens[0].Start.Column, tokens[0].Start.Offset)
	}
	if tokens[1].Type != TOKEN_DOT || tokens[1].Start.Offset != 13 {
		t.Errorf("Expected dot at offset 13, got %v at %d", tokens[1].Type, tokens[1].Start.Offset)
	}
}

// TestInvalidCharacter tests that unknown characters yield TOKEN_INVALID
// without aborting the scan.
func TestInvalidCharacter(t *testing.T) {
	tokens := New("a @ b").ScanTokens()

	if len(tokens) != 4 {
		t.Fatalf("Expected 4 tokens, got %d", len(tokens))
	}
	if tokens[1].Type != TOKEN_INVALID {
		t.Errorf("Expected TOKEN_INVALID, got %v", tokens[1].Type)
	}
	if tokens[2].Type != TOKEN_IDENTIFIER || tokens[2].Lexeme != "b" {
		t.Errorf("Expected scan to continue past invalid token, got %v", tokens[2])
	}
}
