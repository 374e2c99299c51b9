/*
File    : go-tiny/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking interpreter for the Tiny
// language: the alternative back end that executes the AST directly
// instead of lowering it to bytecode. Its observable output is
// byte-identical to running the generated bytecode on the virtual
// machine.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-tiny/parser"
	"github.com/akashmaji946/go-tiny/scope"
)

// Evaluator holds the state for evaluating Tiny AST nodes: the variable
// environment and the output writer the print statements target.
type Evaluator struct {
	Scp    *scope.Scope // Variable bindings; persists across Eval calls
	Writer io.Writer    // Output sink for print/putc (default: os.Stdout)
}

// NewEvaluator creates an Evaluator with a fresh global scope writing
// to standard output.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp:    scope.NewScope(nil),
		Writer: os.Stdout,
	}
}

// SetWriter redirects output from print/putc to w. Tests use this to
// capture program output in a buffer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Eval interprets the tree rooted at node. Statements yield no value;
// the first type mismatch, undefined name, or output failure aborts
// with an InterpretationError.
func (e *Evaluator) Eval(node *parser.Node) error {
	_, err := e.evalNode(node)
	return err
}

// evalNode walks one node, returning the value for expression nodes
// and nil for statement nodes. A nil node is the empty statement.
func (e *Evaluator) evalNode(node *parser.Node) (result, error) {
	if node == nil {
		return noValue, nil
	}

	switch node.Kind {
	case parser.SEQUENCE_NODE:
		return e.evalSequence(node)
	case parser.ASSIGN_NODE:
		return e.evalAssign(node)
	case parser.IF_NODE:
		return e.evalIf(node)
	case parser.WHILE_NODE:
		return e.evalWhile(node)
	case parser.PRTC_NODE:
		return e.evalPrtc(node)
	case parser.PRTI_NODE:
		return e.evalPrti(node)
	case parser.PRTS_NODE:
		return e.evalPrts(node)

	case parser.IDENTIFIER_NODE:
		return e.evalIdentifier(node)
	case parser.INTEGER_NODE, parser.STRING_NODE:
		return e.evalLiteral(node)
	case parser.NEGATE_NODE, parser.NOT_NODE:
		return e.evalUnaryOp(node)

	case parser.MULTIPLY_NODE, parser.DIVIDE_NODE, parser.MOD_NODE,
		parser.ADD_NODE, parser.SUBTRACT_NODE,
		parser.LESS_NODE, parser.LESSEQUAL_NODE,
		parser.GREATER_NODE, parser.GREATEREQUAL_NODE,
		parser.EQUAL_NODE, parser.NOTEQUAL_NODE,
		parser.AND_NODE, parser.OR_NODE:
		return e.evalBinaryOp(node)

	default:
		return noValue, e.createError("unknown node kind: %s", node.Kind)
	}
}
