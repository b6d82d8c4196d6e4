package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes HCL source text. Tokens are produced lazily via Next;
// ScanTokens drains the whole stream at once. An unrecognized character
// or malformed literal yields a TOKEN_INVALID token rather than
// aborting the scan, so the parser decides how to surface the failure.
type Lexer struct {
	src   string
	base  int // byte offset of src[0] within the enclosing document
	pos   Pos // position of the next unread character
	start Pos // position where the current token started
}

// New creates a new Lexer for the given source text
func New(src string) *Lexer {
	return NewAt(src, Pos{Offset: 0, Line: 1, Column: 1})
}

// NewAt creates a Lexer whose positions are offset to start at `at`.
// Used to tokenize template interpolations with document-global spans.
func NewAt(src string, at Pos) *Lexer {
	return &Lexer{src: src, base: at.Offset, pos: at}
}

// ScanTokens scans all remaining tokens including the trailing EOF token
func (l *Lexer) ScanTokens() []Token {
	tokens := make([]Token, 0, len(l.src)/4)
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens
		}
	}
}

// Next scans and returns the next token
func (l *Lexer) Next() Token {
	for !l.isAtEnd() {
		l.start = l.pos
		r := l.advance()

		switch r {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return l.token(TOKEN_NEWLINE, nil)
		case '#':
			l.skipLineComment()
			continue
		case '{':
			return l.token(TOKEN_LBRACE, nil)
		case '}':
			return l.token(TOKEN_RBRACE, nil)
		case '[':
			return l.token(TOKEN_LBRACKET, nil)
		case ']':
			return l.token(TOKEN_RBRACKET, nil)
		case '(':
			return l.token(TOKEN_LPAREN, nil)
		case ')':
			return l.token(TOKEN_RPAREN, nil)
		case ',':
			return l.token(TOKEN_COMMA, nil)
		case ':':
			return l.token(TOKEN_COLON, nil)
		case '?':
			return l.token(TOKEN_QUESTION, nil)
		case '+':
			return l.token(TOKEN_PLUS, nil)
		case '-':
			return l.token(TOKEN_MINUS, nil)
		case '*':
			return l.token(TOKEN_STAR, nil)
		case '%':
			return l.token(TOKEN_PERCENT, nil)
		case '=':
			if l.match('=') {
				return l.token(TOKEN_EQUAL_EQUAL, nil)
			}
			return l.token(TOKEN_EQUAL, nil)
		case '!':
			if l.match('=') {
				return l.token(TOKEN_BANG_EQUAL, nil)
			}
			return l.token(TOKEN_BANG, nil)
		case '<':
			if l.match('<') {
				return l.scanHeredoc()
			}
			if l.match('=') {
				return l.token(TOKEN_LESS_EQUAL, nil)
			}
			return l.token(TOKEN_LESS, nil)
		case '>':
			if l.match('=') {
				return l.token(TOKEN_GREATER_EQUAL, nil)
			}
			return l.token(TOKEN_GREATER, nil)
		case '&':
			if l.match('&') {
				return l.token(TOKEN_AMPERSAND_AMPERSAND, nil)
			}
			return l.invalid("unexpected character: &")
		case '|':
			if l.match('|') {
				return l.token(TOKEN_PIPE_PIPE, nil)
			}
			return l.invalid("unexpected character: |")
		case '/':
			if l.match('/') {
				l.skipLineComment()
				continue
			}
			if l.match('*') {
				l.skipBlockComment()
				continue
			}
			return l.token(TOKEN_SLASH, nil)
		case '.':
			if l.peek() == '.' && l.peekAhead(1) == '.' {
				l.advance()
				l.advance()
				return l.token(TOKEN_ELLIPSIS, nil)
			}
			return l.token(TOKEN_DOT, nil)
		case '"':
			return l.scanString()
		default:
			if isDigit(r) {
				return l.scanNumber()
			}
			if isIdentStart(r) {
				return l.scanIdentifier()
			}
			return l.invalid("unexpected character: " + string(r))
		}
	}

	l.start = l.pos
	return l.token(TOKEN_EOF, nil)
}

// scanString scans a quoted string template. The raw text between the
// quotes is kept undecoded in the token's Literal; escape sequences and
// interpolations are interpreted by the parser. The scanner tracks
// `${`/`%{` nesting so that braces and quotes inside interpolations do
// not terminate the template.
func (l *Lexer) scanString() Token {
	depth := 0       // open interpolation braces
	inNested := false // inside a quoted string nested within an interpolation

	for {
		if l.isAtEnd() {
			return l.invalid("unterminated string")
		}
		if l.peek() == '\n' && depth == 0 {
			return l.invalid("unterminated string")
		}

		c := l.advance()

		if inNested {
			switch c {
			case '\\':
				if !l.isAtEnd() {
					l.advance()
				}
			case '"':
				inNested = false
			}
			continue
		}

		switch c {
		case '\\':
			if !l.isAtEnd() {
				l.advance()
			}
		case '"':
			if depth == 0 {
				inner := l.src[l.start.Offset-l.base+1 : l.pos.Offset-l.base-1]
				return l.token(TOKEN_STRING, inner)
			}
			inNested = true
		case '$', '%':
			if l.peek() == c {
				// $${ and %%{ are escapes, not interpolation starts
				l.advance()
			} else if l.peek() == '{' {
				l.advance()
				depth++
			}
		case '{':
			if depth > 0 {
				depth++
			}
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
}

// scanHeredoc scans a heredoc template after the << has been consumed
func (l *Lexer) scanHeredoc() Token {
	indented := l.match('-')

	if !isIdentStart(l.peek()) {
		return l.invalid("invalid heredoc marker")
	}
	markerStart := l.pos.Offset - l.base
	for isIdentPart(l.peek()) {
		l.advance()
	}
	marker := l.src[markerStart : l.pos.Offset-l.base]

	for l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\r' {
		l.advance()
	}
	if l.peek() != '\n' {
		return l.invalid("expected newline after heredoc marker")
	}
	l.advance()

	contentStart := l.pos
	var content strings.Builder

	for {
		if l.isAtEnd() {
			return l.invalid("unterminated heredoc, expected marker: " + marker)
		}

		lineStart := l.pos.Offset - l.base
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
		line := l.src[lineStart : l.pos.Offset-l.base]

		if strings.TrimRight(strings.TrimLeft(line, " \t"), "\r") == marker {
			// Terminator line; its trailing newline stays in the stream
			return l.token(TOKEN_HEREDOC, HeredocValue{
				Marker:       marker,
				Indented:     indented,
				Content:      content.String(),
				ContentStart: contentStart,
			})
		}

		content.WriteString(line)
		if !l.isAtEnd() {
			l.advance()
			content.WriteByte('\n')
		}
	}
}

// scanNumber scans an integer or float literal
func (l *Lexer) scanNumber() Token {
	for isDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekAhead(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			return l.invalid("invalid number literal")
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	lexeme := l.src[l.start.Offset-l.base : l.pos.Offset-l.base]
	if isFloat {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return l.invalid("invalid float literal: " + err.Error())
		}
		return l.token(TOKEN_NUMBER, value)
	}

	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		// Integers beyond int64 still round-trip as floats
		fvalue, ferr := strconv.ParseFloat(lexeme, 64)
		if ferr != nil {
			return l.invalid("invalid integer literal: " + err.Error())
		}
		return l.token(TOKEN_NUMBER, fvalue)
	}
	return l.token(TOKEN_NUMBER, value)
}

// scanIdentifier scans a bare identifier
func (l *Lexer) scanIdentifier() Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	return l.token(TOKEN_IDENTIFIER, nil)
}

// skipLineComment consumes to the end of line, leaving the newline
func (l *Lexer) skipLineComment() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// skipBlockComment consumes a /* ... */ comment, including newlines
func (l *Lexer) skipBlockComment() {
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekAhead(1) == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
}

// Helper methods

func (l *Lexer) isAtEnd() bool {
	return l.pos.Offset-l.base >= len(l.src)
}

// advance consumes and returns the current character
func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos.Offset-l.base:])
	l.pos.Offset += size
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return r
}

// match consumes the current character if it equals expected
func (l *Lexer) match(expected rune) bool {
	if l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

// peek returns the current character without consuming it
func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos.Offset-l.base:])
	return r
}

// peekAhead returns the character n runes past the current one
func (l *Lexer) peekAhead(n int) rune {
	idx := l.pos.Offset - l.base
	for ; n > 0 && idx < len(l.src); n-- {
		_, size := utf8.DecodeRuneInString(l.src[idx:])
		idx += size
	}
	if idx >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[idx:])
	return r
}

func (l *Lexer) token(tokenType TokenType, literal interface{}) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  l.src[l.start.Offset-l.base : l.pos.Offset-l.base],
		Literal: literal,
		Start:   l.start,
		End:     l.pos,
	}
}

// invalid produces a TOKEN_INVALID token spanning the malformed input,
// carrying a message in its Literal. The lexer never aborts; the parser
// reports the failure through its own diagnostics.
func (l *Lexer) invalid(message string) Token {
	tok := l.token(TOKEN_INVALID, message)
	return tok
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r) || r == '-'
}
