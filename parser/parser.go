/*
File    : go-tiny/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements the syntax analyzer for the Tiny language.

The parser converts a materialized token sequence into an Abstract
Syntax Tree (AST). Statements are parsed by recursive descent;
expressions use precedence climbing driven by the operator table in
parser_precedence.go, with primaries dispatched through a registered
function map.

The first error terminates parsing; there is no recovery. The resulting
tree follows the fixed shape conventions documented on Node, so that
both back ends (the tree interpreter and the code generator) and the
pre-order text form can consume it without further normalization.
*/
package parser

import (
	"github.com/akashmaji946/go-tiny/lexer"
	"github.com/akashmaji946/go-tiny/tinyerr"
)

// Parser represents the parser state. It walks a materialized token
// sequence with a one-token look-ahead held in CurrToken.
type Parser struct {
	Tokens    []lexer.Token // the token sequence, normally ending in End_of_input
	Pos       int           // index of the current token
	CurrToken lexer.Token   // current token (look-ahead)

	// UnaryFuncs associates token types that may start a primary
	// expression with their parsing functions.
	UnaryFuncs map[lexer.TokenType]unaryParseFunction
}

// NewParser creates a Parser over an already materialized token
// sequence, such as one produced by lexer.ReadTokens.
func NewParser(tokens []lexer.Token) *Parser {
	par := &Parser{Tokens: tokens}
	par.init()
	return par
}

// NewParserFromSource lexes src and creates a Parser over the resulting
// tokens. Lexical errors surface here.
func NewParserFromSource(src string) (*Parser, error) {
	lex := lexer.NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens), nil
}

// init sets up the look-ahead and registers the primary parsing
// functions.
func (par *Parser) init() {
	if len(par.Tokens) > 0 {
		par.CurrToken = par.Tokens[0]
	} else {
		par.CurrToken = lexer.Token{Type: lexer.EOF_TYPE, Line: 1, Column: 1}
	}

	par.UnaryFuncs = map[lexer.TokenType]unaryParseFunction{
		lexer.IDENTIFIER_ID: par.parseIdentifierExpression,
		lexer.INT_LIT:       par.parseIntegerLiteral,
		lexer.LEFT_PAREN:    par.parseParenthesizedExpression,
		lexer.PLUS_OP:       par.parseUnaryPlus,
		lexer.MINUS_OP:      par.parseNegate,
		lexer.NOT_OP:        par.parseNot,
	}
}

// Parse parses the whole token sequence into an AST root.
// Empty input yields an empty Sequence node; anything left over after
// the statement list (other than End_of_input) is a syntax error.
func (par *Parser) Parse() (*Node, error) {
	if par.CurrToken.Type == lexer.EOF_TYPE {
		return NewInteriorNode(SEQUENCE_NODE, nil, nil), nil
	}

	root, err := par.parseStatementList()
	if err != nil {
		return nil, err
	}

	if par.CurrToken.Type != lexer.EOF_TYPE {
		return nil, tinyerr.Newf(tinyerr.SyntaxError, "unexpected token: %s", par.CurrToken.Type)
	}
	return root, nil
}

// readToken consumes the current token and returns it, pulling the
// next one into the look-ahead. Consuming past the End_of_input
// sentinel is a syntax error.
func (par *Parser) readToken() (lexer.Token, error) {
	if par.CurrToken.Type == lexer.EOF_TYPE {
		return lexer.Token{}, tinyerr.New(tinyerr.SyntaxError, "unexpected EOF")
	}
	token := par.CurrToken
	par.Pos++
	if par.Pos < len(par.Tokens) {
		par.CurrToken = par.Tokens[par.Pos]
	} else {
		// Token lists read from a file may lack the sentinel; synthesize
		// one at the last known position.
		par.CurrToken = lexer.Token{Type: lexer.EOF_TYPE, Line: token.Line, Column: token.Column}
	}
	return token, nil
}

// expect consumes the current token if it has the wanted type, and
// otherwise fails with a syntax error naming the expected lexeme.
func (par *Parser) expect(tokenType lexer.TokenType, lexeme string) error {
	if par.CurrToken.Type != tokenType {
		return tinyerr.Newf(tinyerr.SyntaxError, "'%s' is expected.", lexeme)
	}
	_, err := par.readToken()
	return err
}
