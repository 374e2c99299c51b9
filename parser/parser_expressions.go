/*
File    : go-tiny/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-tiny/lexer"
	"github.com/akashmaji946/go-tiny/tinyerr"
)

// parseExpression is the entry point for parsing expressions.
// It parses a primary and then climbs the operator table from the
// minimum precedence, so every binary operator is accepted.
func (par *Parser) parseExpression() (*Node, error) {
	lhs, err := par.parsePrimary()
	if err != nil {
		return nil, err
	}
	return par.parseExpressionBody(lhs, MINIMUM_PRIORITY)
}

// parseExpressionBody is the precedence-climbing loop. It extends lhs
// with operators whose precedence is at least minPrecedence; a
// higher-precedence operator after the right operand recurses, so
// "a + b * c" parses as "a + (b * c)". All Tiny operators are
// left-associative.
func (par *Parser) parseExpressionBody(lhs *Node, minPrecedence int) (*Node, error) {
	nextPrecedence := getPrecedence(par.CurrToken.Type)
	for nextPrecedence >= minPrecedence {
		opToken := par.CurrToken
		opPrecedence := nextPrecedence
		if _, err := par.readToken(); err != nil {
			return nil, err
		}

		rhs, err := par.parsePrimary()
		if err != nil {
			return nil, err
		}

		nextPrecedence = getPrecedence(par.CurrToken.Type)
		for nextPrecedence > opPrecedence {
			rhs, err = par.parseExpressionBody(rhs, nextPrecedence)
			if err != nil {
				return nil, err
			}
			nextPrecedence = getPrecedence(par.CurrToken.Type)
		}

		lhs = NewInteriorNode(binaryNodeKinds[opToken.Type], lhs, rhs)
	}
	return lhs, nil
}

// parsePrimary parses a primary expression by dispatching through the
// registered function map: identifiers, integer literals, grouping,
// and the prefix operators '+', '-', '!'.
func (par *Parser) parsePrimary() (*Node, error) {
	parseFunc, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		return nil, tinyerr.New(tinyerr.SyntaxError, "invalid primary")
	}
	return parseFunc()
}

// parseIdentifierExpression parses a variable reference.
func (par *Parser) parseIdentifierExpression() (*Node, error) {
	token, err := par.readToken()
	if err != nil {
		return nil, err
	}
	return NewIdentifierNode(token.Literal), nil
}

// parseIntegerLiteral parses an integer literal. Character literals
// arrive here too, already lexed into integer tokens.
func (par *Parser) parseIntegerLiteral() (*Node, error) {
	token, err := par.readToken()
	if err != nil {
		return nil, err
	}
	return NewIntegerNode(token.Value), nil
}

// parseParenthesizedExpression parses '(' expr ')' used as a primary.
// The parentheses contribute no node; precedence is encoded by the
// tree shape.
func (par *Parser) parseParenthesizedExpression() (*Node, error) {
	if _, err := par.readToken(); err != nil { // '('
		return nil, err
	}

	node, err := par.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := par.expect(lexer.RIGHT_PAREN, ")"); err != nil {
		return nil, err
	}
	return node, nil
}

// parseUnaryPlus parses '+' primary. Unary plus is a no-op and is
// discarded.
func (par *Parser) parseUnaryPlus() (*Node, error) {
	if _, err := par.readToken(); err != nil { // '+'
		return nil, err
	}
	return par.parsePrimary()
}

// parseNegate parses '-' primary into a Negate node.
func (par *Parser) parseNegate() (*Node, error) {
	if _, err := par.readToken(); err != nil { // '-'
		return nil, err
	}
	operand, err := par.parsePrimary()
	if err != nil {
		return nil, err
	}
	return NewInteriorNode(NEGATE_NODE, operand, nil), nil
}

// parseNot parses '!' primary into a Not node.
func (par *Parser) parseNot() (*Node, error) {
	if _, err := par.readToken(); err != nil { // '!'
		return nil, err
	}
	operand, err := par.parsePrimary()
	if err != nil {
		return nil, err
	}
	return NewInteriorNode(NOT_NODE, operand, nil), nil
}
