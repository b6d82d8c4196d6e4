package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hclkit-lang/hclkit/syntax/lexer"
)

// templateScanner walks raw template text while tracking the
// document-global position of each character, so that failures inside
// interpolated expressions point at the original source.
type templateScanner struct {
	raw string
	idx int
	pos lexer.Pos
}

func (s *templateScanner) atEnd() bool {
	return s.idx >= len(s.raw)
}

func (s *templateScanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.raw[s.idx:])
	return r
}

func (s *templateScanner) peekAhead(n int) rune {
	idx := s.idx
	for ; n > 0 && idx < len(s.raw); n-- {
		_, size := utf8.DecodeRuneInString(s.raw[idx:])
		idx += size
	}
	if idx >= len(s.raw) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.raw[idx:])
	return r
}

func (s *templateScanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.raw[s.idx:])
	s.idx += size
	s.pos.Offset += size
	if r == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	return r
}

// parseQuotedTemplate interprets a TOKEN_STRING's raw content. Without
// interpolations the result is a plain string literal; with them, a
// template expression.
func (p *Parser) parseQuotedTemplate(tok lexer.Token) ExprNode {
	raw := tok.Literal.(string)
	base := tok.Start
	base.Offset++ // past the opening quote
	base.Column++

	parts, ok := p.parseTemplateParts(raw, base, true)
	if !ok {
		return nil
	}

	switch len(parts) {
	case 0:
		return NewLiteralExpr("")
	case 1:
		if lit, isLit := parts[0].(TemplateLiteral); isLit {
			return NewLiteralExpr(lit.Value)
		}
	}
	return &TemplateExpr{Parts: parts}
}

// parseHeredoc interprets a TOKEN_HEREDOC's content. Heredoc text is
// literal apart from interpolations: backslash sequences stay as-is.
func (p *Parser) parseHeredoc(tok lexer.Token) ExprNode {
	hv := tok.Literal.(lexer.HeredocValue)

	parts, ok := p.parseTemplateParts(hv.Content, hv.ContentStart, false)
	if !ok {
		return nil
	}
	return &HeredocExpr{
		Marker:   Ident{name: hv.Marker},
		Indented: hv.Indented,
		Parts:    parts,
	}
}

// parseTemplateParts splits raw template text into literal runs and
// interpolations. quoted selects backslash-escape decoding, which only
// applies inside quoted templates. `$${` and `%%{` always decode to
// literal `${` and `%{`; `%{` directives are not interpreted and pass
// through as literal text.
func (p *Parser) parseTemplateParts(raw string, base lexer.Pos, quoted bool) ([]TemplatePart, bool) {
	s := &templateScanner{raw: raw, pos: base}

	var parts []TemplatePart
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, TemplateLiteral{Value: lit.String()})
			lit.Reset()
		}
	}

	for !s.atEnd() {
		r := s.peek()

		if quoted && r == '\\' {
			s.advance()
			decodeEscape(s, &lit)
			continue
		}

		if (r == '$' || r == '%') && s.peekAhead(1) == r && s.peekAhead(2) == '{' {
			// $${ and %%{ collapse to a single introducer, kept literal
			s.advance()
			s.advance()
			lit.WriteRune(r)
			continue
		}

		if r == '$' && s.peekAhead(1) == '{' {
			flush()
			expr, ok := p.parseInterpolation(s)
			if !ok {
				return nil, false
			}
			parts = append(parts, TemplateInterp{Expr: expr})
			continue
		}

		lit.WriteRune(s.advance())
	}

	flush()
	return parts, true
}

// parseInterpolation consumes a ${...} interpolation at the scanner's
// position and parses its contents as an expression with
// document-global positions.
func (p *Parser) parseInterpolation(s *templateScanner) (ExprNode, bool) {
	s.advance() // $
	s.advance() // {

	exprPos := s.pos
	startIdx := s.idx

	// Find the matching close brace. Braces inside nested quoted
	// strings do not count.
	depth := 1
	inStr := false
	for !s.atEnd() && depth > 0 {
		c := s.advance()
		if inStr {
			switch c {
			case '\\':
				if !s.atEnd() {
					s.advance()
				}
			case '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	if depth > 0 {
		p.failExpected(lexer.Token{Type: lexer.TOKEN_INVALID, Start: s.pos, End: s.pos},
			catExpression, expExprClose)
		return nil, false
	}

	inner := s.raw[startIdx : s.idx-1]
	return p.parseEmbeddedExpr(inner, exprPos)
}

// parseEmbeddedExpr parses interpolation contents with a sub-parser and
// folds any failure back into the enclosing parser's candidate.
func (p *Parser) parseEmbeddedExpr(src string, at lexer.Pos) (ExprNode, bool) {
	sub := &Parser{
		tokens: lexer.NewAt(src, at).ScanTokens(),
		source: p.source,
		depth:  p.depth,
	}

	sub.skipNewlines()
	expr := sub.parseExpression()
	if expr != nil {
		sub.skipNewlines()
		if !sub.check(lexer.TOKEN_EOF) {
			sub.failExpected(sub.peek(), catExpression, expExprClose)
			expr = nil
		}
	}

	if expr == nil {
		if sub.fail != nil {
			p.record(sub.fail)
		}
		return nil, false
	}
	return expr, true
}

// decodeEscape appends the decoded form of the escape sequence whose
// backslash was just consumed. Unrecognized sequences pass through
// undecoded.
func decodeEscape(s *templateScanner, out *strings.Builder) {
	if s.atEnd() {
		out.WriteByte('\\')
		return
	}

	switch c := s.advance(); c {
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case '"':
		out.WriteByte('"')
	case '\\':
		out.WriteByte('\\')
	case 'u':
		writeUnicodeEscape(s, out, 4)
	case 'U':
		writeUnicodeEscape(s, out, 8)
	default:
		out.WriteByte('\\')
		out.WriteRune(c)
	}
}

func writeUnicodeEscape(s *templateScanner, out *strings.Builder, digits int) {
	var hex strings.Builder
	for i := 0; i < digits && isHexDigit(s.peek()); i++ {
		hex.WriteRune(s.advance())
	}
	if hex.Len() != digits {
		out.WriteByte('\\')
		if digits == 4 {
			out.WriteByte('u')
		} else {
			out.WriteByte('U')
		}
		out.WriteString(hex.String())
		return
	}
	code, err := strconv.ParseUint(hex.String(), 16, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		out.WriteRune(utf8.RuneError)
		return
	}
	out.WriteRune(rune(code))
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// decodeStringContent decodes the raw content of a quoted string used
// where no interpolation applies, such as block labels. Escape
// sequences decode; interpolation introducers stay literal text.
func decodeStringContent(raw string) string {
	s := &templateScanner{raw: raw, pos: lexer.Pos{Line: 1, Column: 1}}
	var out strings.Builder
	for !s.atEnd() {
		r := s.peek()
		if r == '\\' {
			s.advance()
			decodeEscape(s, &out)
			continue
		}
		if (r == '$' || r == '%') && s.peekAhead(1) == r && s.peekAhead(2) == '{' {
			s.advance()
			s.advance()
			out.WriteRune(r)
			continue
		}
		out.WriteRune(s.advance())
	}
	return out.String()
}
