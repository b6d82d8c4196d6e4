package parser

import (
	"strconv"
	"strings"

	"github.com/hclkit-lang/hclkit/syntax/lexer"
)

// Binary operator precedence levels, lowest first. The conditional
// operator sits below all of these and is handled separately in
// parseExpression.
const (
	precOr = iota + 1
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
)

var binaryPrecedence = map[lexer.TokenType]int{
	lexer.TOKEN_PIPE_PIPE:           precOr,
	lexer.TOKEN_AMPERSAND_AMPERSAND: precAnd,
	lexer.TOKEN_EQUAL_EQUAL:         precEquality,
	lexer.TOKEN_BANG_EQUAL:          precEquality,
	lexer.TOKEN_LESS:                precComparison,
	lexer.TOKEN_LESS_EQUAL:          precComparison,
	lexer.TOKEN_GREATER:             precComparison,
	lexer.TOKEN_GREATER_EQUAL:       precComparison,
	lexer.TOKEN_PLUS:                precTerm,
	lexer.TOKEN_MINUS:               precTerm,
	lexer.TOKEN_STAR:                precFactor,
	lexer.TOKEN_SLASH:               precFactor,
	lexer.TOKEN_PERCENT:             precFactor,
}

var binaryOps = map[lexer.TokenType]BinaryOp{
	lexer.TOKEN_PIPE_PIPE:           BinaryOr,
	lexer.TOKEN_AMPERSAND_AMPERSAND: BinaryAnd,
	lexer.TOKEN_EQUAL_EQUAL:         BinaryEq,
	lexer.TOKEN_BANG_EQUAL:          BinaryNotEq,
	lexer.TOKEN_LESS:                BinaryLess,
	lexer.TOKEN_LESS_EQUAL:          BinaryLessEq,
	lexer.TOKEN_GREATER:             BinaryGreater,
	lexer.TOKEN_GREATER_EQUAL:       BinaryGreaterEq,
	lexer.TOKEN_PLUS:                BinaryAdd,
	lexer.TOKEN_MINUS:               BinarySub,
	lexer.TOKEN_STAR:                BinaryMul,
	lexer.TOKEN_SLASH:               BinaryDiv,
	lexer.TOKEN_PERCENT:             BinaryMod,
}

// parseExpression parses a full expression including the conditional
// operator. Operands must stay on one line; newlines are only skipped
// inside bracketing constructs.
func (p *Parser) parseExpression() ExprNode {
	if p.depth >= maxNestingDepth {
		p.failDepth(p.peek())
		return nil
	}
	p.depth++
	defer func() { p.depth-- }()

	cond := p.parseBinaryExpr(precOr)
	if cond == nil {
		return nil
	}
	if !p.match(lexer.TOKEN_QUESTION) {
		return cond
	}

	trueExpr := p.parseExpression()
	if trueExpr == nil {
		return nil
	}
	if !p.match(lexer.TOKEN_COLON) {
		p.failExpected(p.peek(), catConditional, expColon)
		return nil
	}
	falseExpr := p.parseExpression()
	if falseExpr == nil {
		return nil
	}
	return NewConditionalExpr(cond, trueExpr, falseExpr)
}

// parseBinaryExpr parses binary operations at or above minPrec using
// precedence climbing. All binary operators are left-associative.
func (p *Parser) parseBinaryExpr(minPrec int) ExprNode {
	left := p.parseUnaryExpr()
	if left == nil {
		return nil
	}

	for {
		prec, ok := binaryPrecedence[p.peek().Type]
		if !ok || prec < minPrec {
			return left
		}
		opTok := p.advance()
		right := p.parseBinaryExpr(prec + 1)
		if right == nil {
			return nil
		}
		left = NewBinaryExpr(left, binaryOps[opTok.Type], right)
	}
}

func (p *Parser) parseUnaryExpr() ExprNode {
	switch {
	case p.check(lexer.TOKEN_MINUS):
		p.advance()
		operand := p.parseUnaryExpr()
		if operand == nil {
			return nil
		}
		return NewUnaryExpr(UnaryNeg, operand)
	case p.check(lexer.TOKEN_BANG):
		p.advance()
		operand := p.parseUnaryExpr()
		if operand == nil {
			return nil
		}
		return NewUnaryExpr(UnaryNot, operand)
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary expression followed by any chain of
// traversal operators.
func (p *Parser) parsePostfixExpr() ExprNode {
	expr := p.parsePrimaryExpr()
	if expr == nil {
		return nil
	}

	var ops []Traverser
	for {
		switch {
		case p.check(lexer.TOKEN_DOT):
			p.advance()
			more, ok := p.parseDotTraverser()
			if !ok {
				return nil
			}
			ops = append(ops, more...)

		case p.check(lexer.TOKEN_LBRACKET):
			p.advance()
			p.skipNewlines()
			if p.check(lexer.TOKEN_STAR) {
				p.advance()
				if !p.match(lexer.TOKEN_RBRACKET) {
					p.failExpected(p.peek(), catIndex, expIndexClose)
					return nil
				}
				ops = append(ops, TraverseSplat{Full: true})
				continue
			}
			index := p.parseExpression()
			if index == nil {
				return nil
			}
			p.skipNewlines()
			if !p.match(lexer.TOKEN_RBRACKET) {
				p.failExpected(p.peek(), catIndex, expIndexClose)
				return nil
			}
			ops = append(ops, TraverseIndex{Index: index})

		default:
			if len(ops) > 0 {
				return NewTraversalExpr(expr, ops...)
			}
			return expr
		}
	}
}

// parseDotTraverser parses what follows a traversal dot: an attribute
// name, a splat star, or a numeric index. A float token such as `0.1`
// after a dot is two consecutive dot-indexes and yields two operators.
func (p *Parser) parseDotTraverser() ([]Traverser, bool) {
	switch {
	case p.check(lexer.TOKEN_IDENTIFIER):
		tok := p.advance()
		return []Traverser{TraverseAttr{Name: Ident{name: tok.Lexeme}}}, true

	case p.check(lexer.TOKEN_STAR):
		p.advance()
		return []Traverser{TraverseSplat{Full: false}}, true

	case p.check(lexer.TOKEN_NUMBER):
		tok := p.advance()
		switch v := tok.Literal.(type) {
		case int64:
			if v >= 0 {
				return []Traverser{TraverseDotIndex{Index: uint64(v)}}, true
			}
		case float64:
			parts := strings.SplitN(tok.Lexeme, ".", 2)
			if len(parts) == 2 {
				first, err1 := strconv.ParseUint(parts[0], 10, 64)
				second, err2 := strconv.ParseUint(parts[1], 10, 64)
				if err1 == nil && err2 == nil {
					return []Traverser{
						TraverseDotIndex{Index: first},
						TraverseDotIndex{Index: second},
					}, true
				}
			}
		}
		p.failExpected(tok, catTraversal, expTraversal)
		return nil, false
	}

	p.failExpected(p.peek(), catTraversal, expTraversal)
	return nil, false
}

func (p *Parser) parsePrimaryExpr() ExprNode {
	switch {
	case p.check(lexer.TOKEN_NUMBER):
		tok := p.advance()
		return NewLiteralExpr(tok.Literal)

	case p.check(lexer.TOKEN_STRING):
		return p.parseQuotedTemplate(p.advance())

	case p.check(lexer.TOKEN_HEREDOC):
		return p.parseHeredoc(p.advance())

	case p.check(lexer.TOKEN_IDENTIFIER):
		tok := p.advance()
		switch tok.Lexeme {
		case "true":
			return NewLiteralExpr(true)
		case "false":
			return NewLiteralExpr(false)
		case "null":
			return NewLiteralExpr(nil)
		}
		if p.check(lexer.TOKEN_LPAREN) {
			return p.parseFuncCall(tok)
		}
		return NewVariableExpr(Ident{name: tok.Lexeme})

	case p.check(lexer.TOKEN_LBRACKET):
		return p.parseTupleExpr()

	case p.check(lexer.TOKEN_LBRACE):
		return p.parseObjectExpr()

	case p.check(lexer.TOKEN_LPAREN):
		return p.parseParenExpr()
	}

	p.failExpected(p.peek(), catExpression, expExprStart)
	return nil
}

// parseFuncCall parses the argument list after the function name. The
// opening paren is the current token. Arguments may span lines and may
// carry a trailing comma; a trailing `...` expands the final argument.
func (p *Parser) parseFuncCall(nameTok lexer.Token) ExprNode {
	p.advance() // (
	p.skipNewlines()

	call := &FuncCallExpr{Name: Ident{name: nameTok.Lexeme}}
	if p.match(lexer.TOKEN_RPAREN) {
		return call
	}

	for {
		arg := p.parseExpression()
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)
		p.skipNewlines()

		if p.match(lexer.TOKEN_ELLIPSIS) {
			call.ExpandFinal = true
			p.skipNewlines()
			if !p.match(lexer.TOKEN_RPAREN) {
				p.failExpected(p.peek(), catFuncCall, expGroupClose)
				return nil
			}
			return call
		}
		if p.match(lexer.TOKEN_COMMA) {
			p.skipNewlines()
			if p.match(lexer.TOKEN_RPAREN) {
				return call
			}
			continue
		}
		if p.match(lexer.TOKEN_RPAREN) {
			return call
		}
		p.failExpected(p.peek(), catFuncCall, expFuncArg)
		return nil
	}
}

func (p *Parser) parseTupleExpr() ExprNode {
	p.advance() // [
	p.skipNewlines()

	tuple := &TupleExpr{}
	if p.match(lexer.TOKEN_RBRACKET) {
		return tuple
	}

	for {
		elem := p.parseExpression()
		if elem == nil {
			return nil
		}
		tuple.Elements = append(tuple.Elements, elem)
		p.skipNewlines()

		if p.match(lexer.TOKEN_COMMA) {
			p.skipNewlines()
			if p.match(lexer.TOKEN_RBRACKET) {
				return tuple
			}
			continue
		}
		if p.match(lexer.TOKEN_RBRACKET) {
			return tuple
		}
		p.failExpected(p.peek(), catTupleItem, expTupleItem)
		return nil
	}
}

// parseObjectExpr parses an object literal. Items are separated by
// commas or newlines; keys are bare identifiers, quoted strings or
// parenthesized expressions.
func (p *Parser) parseObjectExpr() ExprNode {
	p.advance() // {
	p.skipNewlines()

	obj := &ObjectExpr{}
	for {
		if p.match(lexer.TOKEN_RBRACE) {
			return obj
		}

		var key ObjectKey
		switch {
		case p.check(lexer.TOKEN_IDENTIFIER):
			tok := p.advance()
			key = KeyIdent{Name: Ident{name: tok.Lexeme}}
		case p.check(lexer.TOKEN_STRING):
			expr := p.parseQuotedTemplate(p.advance())
			if expr == nil {
				return nil
			}
			key = KeyExpr{Expr: expr}
		case p.check(lexer.TOKEN_LPAREN):
			expr := p.parseParenExpr()
			if expr == nil {
				return nil
			}
			key = KeyExpr{Expr: expr}
		default:
			p.failExpected(p.peek(), catObjectItem, expObjectKey)
			return nil
		}

		if !p.match(lexer.TOKEN_EQUAL, lexer.TOKEN_COLON) {
			p.failExpected(p.peek(), catObjectItem, expObjectAssign)
			return nil
		}

		value := p.parseExpression()
		if value == nil {
			return nil
		}
		obj.Items = append(obj.Items, ObjectItem{Key: key, Value: value})

		switch {
		case p.check(lexer.TOKEN_COMMA):
			p.advance()
			p.skipNewlines()
		case p.check(lexer.TOKEN_NEWLINE):
			p.skipNewlines()
		case p.check(lexer.TOKEN_RBRACE):
			// closed by the loop head
		default:
			p.failExpected(p.peek(), catObjectItem, expObjectItem)
			return nil
		}
	}
}

func (p *Parser) parseParenExpr() ExprNode {
	p.advance() // (
	p.skipNewlines()

	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	p.skipNewlines()
	if !p.match(lexer.TOKEN_RPAREN) {
		p.failExpected(p.peek(), catExpression, expGroupClose)
		return nil
	}
	return &ParenExpr{Expr: expr}
}
