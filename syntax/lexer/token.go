package lexer

import "fmt"

// TokenType represents the type of a token in HCL source text
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_INVALID
	TOKEN_NEWLINE

	// Literals
	TOKEN_IDENTIFIER
	TOKEN_NUMBER
	TOKEN_STRING
	TOKEN_HEREDOC

	// Delimiters
	TOKEN_LBRACE   // {
	TOKEN_RBRACE   // }
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]
	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )

	// Operators - Single character
	TOKEN_COMMA    // ,
	TOKEN_DOT      // .
	TOKEN_COLON    // :
	TOKEN_QUESTION // ?
	TOKEN_EQUAL    // =
	TOKEN_BANG     // !
	TOKEN_LESS     // <
	TOKEN_GREATER  // >
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_STAR     // *
	TOKEN_SLASH    // /
	TOKEN_PERCENT  // %

	// Operators - Multi-character
	TOKEN_ELLIPSIS            // ...
	TOKEN_EQUAL_EQUAL         // ==
	TOKEN_BANG_EQUAL          // !=
	TOKEN_LESS_EQUAL          // <=
	TOKEN_GREATER_EQUAL       // >=
	TOKEN_AMPERSAND_AMPERSAND // &&
	TOKEN_PIPE_PIPE           // ||
)

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_INVALID:
		return "INVALID"
	case TOKEN_NEWLINE:
		return "NEWLINE"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_HEREDOC:
		return "HEREDOC"
	case TOKEN_LBRACE:
		return "LBRACE"
	case TOKEN_RBRACE:
		return "RBRACE"
	case TOKEN_LBRACKET:
		return "LBRACKET"
	case TOKEN_RBRACKET:
		return "RBRACKET"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_RPAREN:
		return "RPAREN"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_DOT:
		return "DOT"
	case TOKEN_COLON:
		return "COLON"
	case TOKEN_QUESTION:
		return "QUESTION"
	case TOKEN_EQUAL:
		return "EQUAL"
	case TOKEN_BANG:
		return "BANG"
	case TOKEN_LESS:
		return "LESS"
	case TOKEN_GREATER:
		return "GREATER"
	case TOKEN_PLUS:
		return "PLUS"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_SLASH:
		return "SLASH"
	case TOKEN_PERCENT:
		return "PERCENT"
	case TOKEN_ELLIPSIS:
		return "ELLIPSIS"
	case TOKEN_EQUAL_EQUAL:
		return "EQUAL_EQUAL"
	case TOKEN_BANG_EQUAL:
		return "BANG_EQUAL"
	case TOKEN_LESS_EQUAL:
		return "LESS_EQUAL"
	case TOKEN_GREATER_EQUAL:
		return "GREATER_EQUAL"
	case TOKEN_AMPERSAND_AMPERSAND:
		return "AMPERSAND_AMPERSAND"
	case TOKEN_PIPE_PIPE:
		return "PIPE_PIPE"
	default:
		return "UNKNOWN"
	}
}

// Pos is a position in the source text. Offset is a byte offset; Line
// and Column are 1-indexed and counted in characters for display.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// String returns a line:column rendering of the position
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a single lexical token
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // Decoded payload (numbers, string contents, heredocs)
	Start   Pos
	End     Pos
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s(%v) [%s]", t.Type, t.Literal, t.Start)
	}
	return fmt.Sprintf("%s(%s) [%s]", t.Type, t.Lexeme, t.Start)
}

// HeredocValue is the decoded payload of a TOKEN_HEREDOC token.
// Content holds the raw template text between the introducer line and
// the terminator line, including trailing newlines. ContentStart is the
// position of the first content character, so that interpolations
// inside the heredoc can be parsed with document-global positions.
type HeredocValue struct {
	Marker       string
	Indented     bool // introduced by <<- rather than <<
	Content      string
	ContentStart Pos
}
