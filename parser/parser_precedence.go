/*
File    : go-tiny/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-tiny/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter). All Tiny binary
// operators are left-associative; unary operators are handled by the
// primary parser and bind tighter than any of these.
const (
	MINIMUM_PRIORITY = 0 // base priority for starting expression parsing

	// Logical OR: ||
	OR_PRIORITY = 10

	// Logical AND: &&
	AND_PRIORITY = 20

	// Equality operators: == !=
	EQUALITY_PRIORITY = 30

	// Relational operators: < <= > >=
	RELATIONAL_PRIORITY = 40

	// Additive operators: + -
	PLUS_PRIORITY = 50

	// Multiplicative operators: * / %
	MUL_PRIORITY = 60
)

// getPrecedence returns the precedence level for a given token type,
// or -1 for tokens that are not binary operators. This drives the
// precedence-climbing expression parser.
func getPrecedence(tokenType lexer.TokenType) int {
	switch tokenType {
	case lexer.OR_OP:
		return OR_PRIORITY
	case lexer.AND_OP:
		return AND_PRIORITY
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY
	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return RELATIONAL_PRIORITY
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY
	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY
	default:
		return -1 // not a binary operator token
	}
}

// binaryNodeKinds maps a binary operator token to the AST node kind it
// produces.
var binaryNodeKinds = map[lexer.TokenType]NodeKind{
	lexer.MUL_OP:   MULTIPLY_NODE,
	lexer.DIV_OP:   DIVIDE_NODE,
	lexer.MOD_OP:   MOD_NODE,
	lexer.PLUS_OP:  ADD_NODE,
	lexer.MINUS_OP: SUBTRACT_NODE,
	lexer.LT_OP:    LESS_NODE,
	lexer.LE_OP:    LESSEQUAL_NODE,
	lexer.GT_OP:    GREATER_NODE,
	lexer.GE_OP:    GREATEREQUAL_NODE,
	lexer.EQ_OP:    EQUAL_NODE,
	lexer.NE_OP:    NOTEQUAL_NODE,
	lexer.AND_OP:   AND_NODE,
	lexer.OR_OP:    OR_NODE,
}

// unaryParseFunction is a function type for parsing primary
// expressions: literals, identifiers, grouping, and prefix operators.
type unaryParseFunction func() (*Node, error)
