// Package parser implements the HCL grammar as a recursive-descent
// parser over the token stream, producing the document model defined in
// ast.go and ast_expr.go. On failure it reports the single
// furthest-progress failure with the set of alternatives that would
// have been accepted there.
package parser

import (
	"strings"

	"github.com/hclkit-lang/hclkit/syntax/diag"
	"github.com/hclkit-lang/hclkit/syntax/lexer"
)

// maxNestingDepth bounds expression recursion so that pathologically
// nested input becomes a ParseError instead of stack exhaustion.
const maxNestingDepth = 512

// failure is a candidate parse error. The parser keeps the candidate
// with the largest byte offset; candidates at the same offset merge
// their expected sets.
type failure struct {
	tok      lexer.Token
	category string
	expected []string
	detail   string
}

// Parser transforms a token stream into the document model
type Parser struct {
	tokens  []lexer.Token
	current int
	source  string
	fail    *failure
	depth   int
}

// ParseBody parses source text into a Body. The error, if non-nil, is a
// *diag.Error carrying the failure position, category and expected set.
func ParseBody(src string) (*Body, error) {
	p := newParser(src)
	body := p.parseBody(lexer.TOKEN_EOF)
	if body == nil {
		return nil, p.diagErr()
	}
	return body, nil
}

// ParseExpression parses source text as a single standalone expression
func ParseExpression(src string) (ExprNode, error) {
	p := newParser(src)
	p.skipNewlines()
	expr := p.parseExpression()
	if expr == nil {
		return nil, p.diagErr()
	}
	p.skipNewlines()
	if !p.check(lexer.TOKEN_EOF) {
		p.failExpected(p.peek(), catExpression, expNewline)
		return nil, p.diagErr()
	}
	return expr, nil
}

func newParser(src string) *Parser {
	return &Parser{
		tokens: lexer.New(src).ScanTokens(),
		source: src,
	}
}

// parseBody parses structures until the end token. The end token itself
// is left unconsumed.
func (p *Parser) parseBody(end lexer.TokenType) *Body {
	var structures []Structure

	for {
		p.skipNewlines()
		if p.check(end) {
			break
		}
		if !p.check(lexer.TOKEN_IDENTIFIER) {
			if end == lexer.TOKEN_RBRACE {
				p.failExpected(p.peek(), catBlockBody, expBlockBody)
			} else {
				p.failExpected(p.peek(), catStructure, expBodyStart)
			}
			return nil
		}
		s := p.parseStructure(end)
		if s == nil {
			return nil
		}
		structures = append(structures, s)
	}

	return &Body{Structures: structures}
}

// parseStructure parses one attribute or block. The current token is an
// identifier; one token of lookahead past it picks the production.
func (p *Parser) parseStructure(end lexer.TokenType) Structure {
	identTok := p.advance()

	switch {
	case p.check(lexer.TOKEN_EQUAL):
		p.advance()
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		if !p.structureEnd(end, catAttribute) {
			return nil
		}
		return &Attribute{Key: Ident{name: identTok.Lexeme}, Value: value}

	case p.check(lexer.TOKEN_STRING), p.check(lexer.TOKEN_IDENTIFIER), p.check(lexer.TOKEN_LBRACE):
		return p.parseBlockRest(identTok, end)

	default:
		p.failExpected(p.peek(), catStructure, expStructure)
		return nil
	}
}

// parseBlockRest parses a block after its identifier has been consumed
func (p *Parser) parseBlockRest(identTok lexer.Token, end lexer.TokenType) Structure {
	var labels []BlockLabel

	for !p.check(lexer.TOKEN_LBRACE) {
		switch {
		case p.check(lexer.TOKEN_STRING):
			tok := p.advance()
			labels = append(labels, LabelString{Value: decodeStringContent(tok.Literal.(string))})
		case p.check(lexer.TOKEN_IDENTIFIER):
			tok := p.advance()
			labels = append(labels, LabelIdent{Name: Ident{name: tok.Lexeme}})
		default:
			p.failExpected(p.peek(), catBlock, expBlockLabel)
			return nil
		}
	}
	p.advance() // {

	body := p.parseBlockBody()
	if body == nil {
		return nil
	}

	block := &Block{Identifier: Ident{name: identTok.Lexeme}, Labels: labels, Body: *body}
	if !p.structureEnd(end, catBlock) {
		return nil
	}
	return block
}

// parseBlockBody parses what follows a block's opening brace: an
// immediate close, a one-line body holding a single attribute, or a
// newline followed by a full body and the closing brace.
func (p *Parser) parseBlockBody() *Body {
	switch {
	case p.check(lexer.TOKEN_RBRACE):
		p.advance()
		return &Body{}

	case p.check(lexer.TOKEN_NEWLINE):
		p.advance()
		body := p.parseBody(lexer.TOKEN_RBRACE)
		if body == nil {
			return nil
		}
		p.advance() // }
		return body

	case p.check(lexer.TOKEN_IDENTIFIER):
		keyTok := p.advance()
		if !p.check(lexer.TOKEN_EQUAL) {
			p.failExpected(p.peek(), catAttribute, expAttrEqual)
			return nil
		}
		p.advance()
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		if !p.check(lexer.TOKEN_RBRACE) {
			p.failExpected(p.peek(), catBlockBody, expOneLineClose)
			return nil
		}
		p.advance()
		return &Body{Structures: []Structure{
			&Attribute{Key: Ident{name: keyTok.Lexeme}, Value: value},
		}}

	default:
		p.failExpected(p.peek(), catBlockBody, expBlockBody)
		return nil
	}
}

// structureEnd requires a newline (consumed) or the body's end token
// (left in place) after a completed structure.
func (p *Parser) structureEnd(end lexer.TokenType, category string) bool {
	if p.check(lexer.TOKEN_NEWLINE) {
		p.advance()
		return true
	}
	if p.check(end) {
		return true
	}
	p.failExpected(p.peek(), category, expNewline)
	return false
}

// Helper methods for token manipulation

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TOKEN_EOF
}

// peek returns the current token without consuming it
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.current]
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token {
	if p.current > 0 {
		return p.tokens[p.current-1]
	}
	return p.tokens[0]
}

// advance consumes and returns the current token
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check checks if the current token is of the given type
func (p *Parser) check(tokenType lexer.TokenType) bool {
	return p.peek().Type == tokenType
}

// match consumes the current token if it matches any of the given types
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}
	return false
}

// skipNewlines skips any newline tokens
func (p *Parser) skipNewlines() {
	for p.match(lexer.TOKEN_NEWLINE) {
	}
}

// Failure bookkeeping

// failExpected records a failure candidate at the given token. A later
// (further) failure replaces an earlier one; failures at the same
// offset merge their expected sets, deduplicated, preserving the order
// in which alternatives were first encountered.
func (p *Parser) failExpected(tok lexer.Token, category string, expected []string) {
	p.record(&failure{
		tok:      tok,
		category: category,
		expected: append([]string(nil), expected...),
	})
}

// failDepth records the nesting depth failure at the given token
func (p *Parser) failDepth(tok lexer.Token) {
	p.record(&failure{
		tok:      tok,
		category: catExpression,
		detail:   "expression nesting exceeds the supported depth",
	})
}

func (p *Parser) record(f *failure) {
	if p.fail == nil || f.tok.Start.Offset > p.fail.tok.Start.Offset {
		p.fail = f
		return
	}
	if f.tok.Start.Offset == p.fail.tok.Start.Offset {
		for _, e := range f.expected {
			if !containsString(p.fail.expected, e) {
				p.fail.expected = append(p.fail.expected, e)
			}
		}
	}
}

// diagErr converts the recorded furthest failure into a *diag.Error
func (p *Parser) diagErr() error {
	f := p.fail
	pos := f.tok.Start

	lineText := ""
	lines := strings.Split(p.source, "\n")
	if pos.Line-1 < len(lines) {
		lineText = strings.TrimSuffix(lines[pos.Line-1], "\r")
	}

	return &diag.Error{
		Line:       pos.Line,
		Column:     pos.Column,
		Offset:     pos.Offset,
		Category:   f.category,
		Expected:   f.expected,
		Detail:     f.detail,
		SourceLine: lineText,
	}
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
