/*
File    : go-tiny/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-tiny/lexer"
	"github.com/akashmaji946/go-tiny/tinyerr"
)

// startsStatement reports whether a token type may begin a statement.
// A statement list runs until the first token that cannot (normally
// '}' or End_of_input).
func startsStatement(tokenType lexer.TokenType) bool {
	switch tokenType {
	case lexer.SEMICOLON_DELIM, lexer.IDENTIFIER_ID, lexer.WHILE_KEY,
		lexer.IF_KEY, lexer.PRINT_KEY, lexer.PUTC_KEY, lexer.LEFT_BRACE:
		return true
	}
	return false
}

// parseStatementList parses { stmt } and threads the statements into a
// left-deep Sequence chain: the first statement becomes
// Sequence(nil, stmt1); each subsequent statement S yields
// Sequence(prev, S). An empty list is the empty Sequence.
func (par *Parser) parseStatementList() (*Node, error) {
	if !startsStatement(par.CurrToken.Type) {
		return NewInteriorNode(SEQUENCE_NODE, nil, nil), nil
	}

	stmt, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	node := NewInteriorNode(SEQUENCE_NODE, nil, stmt)

	for startsStatement(par.CurrToken.Type) {
		stmt, err := par.parseStatement()
		if err != nil {
			return nil, err
		}
		node = NewInteriorNode(SEQUENCE_NODE, node, stmt)
	}
	return node, nil
}

// parseStatement parses a single statement. This is the main
// dispatcher that decides what to parse based on the current token.
func (par *Parser) parseStatement() (*Node, error) {
	switch par.CurrToken.Type {

	// ';' is the empty statement
	case lexer.SEMICOLON_DELIM:
		if _, err := par.readToken(); err != nil {
			return nil, err
		}
		return NewInteriorNode(SEQUENCE_NODE, nil, nil), nil

	// x = expr ;
	case lexer.IDENTIFIER_ID:
		return par.parseAssignStatement()

	case lexer.WHILE_KEY:
		return par.parseWhileStatement()

	case lexer.IF_KEY:
		return par.parseIfStatement()

	case lexer.PRINT_KEY:
		return par.parsePrintStatement()

	case lexer.PUTC_KEY:
		return par.parsePutcStatement()

	// { stmt_list }
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()

	default:
		return nil, tinyerr.Newf(tinyerr.SyntaxError, "unexpected token: %s", par.CurrToken.Type)
	}
}

// parseAssignStatement parses: Identifier '=' expr ';'
func (par *Parser) parseAssignStatement() (*Node, error) {
	ident, err := par.readToken()
	if err != nil {
		return nil, err
	}
	lhs := NewIdentifierNode(ident.Literal)

	if err := par.expect(lexer.ASSIGN_OP, "="); err != nil {
		return nil, err
	}

	rhs, err := par.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := par.expect(lexer.SEMICOLON_DELIM, ";"); err != nil {
		return nil, err
	}
	return NewInteriorNode(ASSIGN_NODE, lhs, rhs), nil
}

// parseWhileStatement parses: 'while' paren_expr stmt
// The condition lands in Lhs and the body in Rhs.
func (par *Parser) parseWhileStatement() (*Node, error) {
	if _, err := par.readToken(); err != nil { // 'while'
		return nil, err
	}

	condition, err := par.parseParenExpr()
	if err != nil {
		return nil, err
	}

	body, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	return NewInteriorNode(WHILE_NODE, condition, body), nil
}

// parseIfStatement parses: 'if' paren_expr stmt ['else' stmt]
// The outer If holds the condition in Lhs; its Rhs is a nested If whose
// Lhs is the then-branch and whose Rhs is the optional else-branch.
func (par *Parser) parseIfStatement() (*Node, error) {
	if _, err := par.readToken(); err != nil { // 'if'
		return nil, err
	}

	condition, err := par.parseParenExpr()
	if err != nil {
		return nil, err
	}

	thenBranch, err := par.parseStatement()
	if err != nil {
		return nil, err
	}

	var elseBranch *Node
	if par.CurrToken.Type == lexer.ELSE_KEY {
		if _, err := par.readToken(); err != nil {
			return nil, err
		}
		elseBranch, err = par.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	branches := NewInteriorNode(IF_NODE, thenBranch, elseBranch)
	return NewInteriorNode(IF_NODE, condition, branches), nil
}

// parsePrintStatement parses: 'print' '(' prt_list ')' ';'
// Each print item lowers to a Prts (string literal) or Prti
// (expression) node; the items are threaded into a left-deep Sequence.
func (par *Parser) parsePrintStatement() (*Node, error) {
	if _, err := par.readToken(); err != nil { // 'print'
		return nil, err
	}

	if err := par.expect(lexer.LEFT_PAREN, "("); err != nil {
		return nil, err
	}

	list, err := par.parsePrintList()
	if err != nil {
		return nil, err
	}

	if err := par.expect(lexer.RIGHT_PAREN, ")"); err != nil {
		return nil, err
	}
	if err := par.expect(lexer.SEMICOLON_DELIM, ";"); err != nil {
		return nil, err
	}
	return list, nil
}

// parsePrintList parses: prt_item {',' prt_item}
func (par *Parser) parsePrintList() (*Node, error) {
	item, err := par.parsePrintItem()
	if err != nil {
		return nil, err
	}
	node := NewInteriorNode(SEQUENCE_NODE, nil, item)

	for par.CurrToken.Type == lexer.COMMA_DELIM {
		if _, err := par.readToken(); err != nil {
			return nil, err
		}
		item, err := par.parsePrintItem()
		if err != nil {
			return nil, err
		}
		node = NewInteriorNode(SEQUENCE_NODE, node, item)
	}
	return node, nil
}

// parsePrintItem parses one print argument: a string literal becomes
// Prts, anything else is an expression wrapped in Prti.
func (par *Parser) parsePrintItem() (*Node, error) {
	if par.CurrToken.Type == lexer.STRING_LIT {
		str, err := par.readToken()
		if err != nil {
			return nil, err
		}
		return NewInteriorNode(PRTS_NODE, NewStringNode(str.Literal), nil), nil
	}

	expr, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	return NewInteriorNode(PRTI_NODE, expr, nil), nil
}

// parsePutcStatement parses: 'putc' paren_expr ';'
func (par *Parser) parsePutcStatement() (*Node, error) {
	if _, err := par.readToken(); err != nil { // 'putc'
		return nil, err
	}

	operand, err := par.parseParenExpr()
	if err != nil {
		return nil, err
	}

	if err := par.expect(lexer.SEMICOLON_DELIM, ";"); err != nil {
		return nil, err
	}
	return NewInteriorNode(PRTC_NODE, operand, nil), nil
}

// parseBlockStatement parses: '{' stmt_list '}'
// The block contributes no node of its own; its statement list is the
// result.
func (par *Parser) parseBlockStatement() (*Node, error) {
	if _, err := par.readToken(); err != nil { // '{'
		return nil, err
	}

	node, err := par.parseStatementList()
	if err != nil {
		return nil, err
	}

	if err := par.expect(lexer.RIGHT_BRACE, "}"); err != nil {
		return nil, err
	}
	return node, nil
}

// parseParenExpr parses: '(' expr ')'
func (par *Parser) parseParenExpr() (*Node, error) {
	if err := par.expect(lexer.LEFT_PAREN, "("); err != nil {
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
