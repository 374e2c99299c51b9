/*
File    : go-tiny/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"unicode/utf8"

	"github.com/akashmaji946/go-tiny/objects"
	"github.com/akashmaji946/go-tiny/parser"
)

// evalSequence evaluates the left child then the right child; either
// may be absent. A Sequence yields no value.
func (e *Evaluator) evalSequence(node *parser.Node) (result, error) {
	if node.Lhs != nil {
		if _, err := e.evalNode(node.Lhs); err != nil {
			return noValue, err
		}
	}
	if node.Rhs != nil {
		if _, err := e.evalNode(node.Rhs); err != nil {
			return noValue, err
		}
	}
	return noValue, nil
}

// evalAssign evaluates the right-hand side and binds the identifier on
// the left to the resulting value.
func (e *Evaluator) evalAssign(node *parser.Node) (result, error) {
	if node.Lhs == nil || node.Lhs.Kind != parser.IDENTIFIER_NODE {
		return noValue, e.createError("identifier is expected")
	}
	value, err := e.evalNode(node.Rhs)
	if err != nil {
		return noValue, err
	}
	if value == nil {
		return noValue, e.createError("expression is expected")
	}
	e.Scp.Bind(node.Lhs.Name, value)
	return noValue, nil
}

// evalIf evaluates the condition and then exactly one branch: the
// then-branch when the condition is nonzero, otherwise the else-branch
// if one is present.
func (e *Evaluator) evalIf(node *parser.Node) (result, error) {
	condValue, err := e.evalNode(node.Lhs)
	if err != nil {
		return noValue, err
	}
	cond, err := e.asInteger(condValue)
	if err != nil {
		return noValue, err
	}

	branches := node.Rhs
	if branches == nil || branches.Kind != parser.IF_NODE {
		return noValue, e.createError("malformed if node")
	}
	if cond != 0 {
		_, err = e.evalNode(branches.Lhs)
	} else if branches.Rhs != nil {
		_, err = e.evalNode(branches.Rhs)
	}
	return noValue, err
}

// evalWhile evaluates the body as long as the condition is nonzero.
func (e *Evaluator) evalWhile(node *parser.Node) (result, error) {
	for {
		condValue, err := e.evalNode(node.Lhs)
		if err != nil {
			return noValue, err
		}
		cond, err := e.asInteger(condValue)
		if err != nil {
			return noValue, err
		}
		if cond == 0 {
			return noValue, nil
		}
		if _, err := e.evalNode(node.Rhs); err != nil {
			return noValue, err
		}
	}
}

// evalPrtc emits the character whose code point is the operand's value.
func (e *Evaluator) evalPrtc(node *parser.Node) (result, error) {
	value, err := e.evalNode(node.Lhs)
	if err != nil {
		return noValue, err
	}
	cp, err := e.asInteger(value)
	if err != nil {
		return noValue, err
	}
	if cp < 0 || !utf8.ValidRune(rune(cp)) {
		return noValue, e.createError("illegal character value: %d", cp)
	}
	if _, err := fmt.Fprintf(e.Writer, "%c", rune(cp)); err != nil {
		return noValue, e.createError("output error: %v", err)
	}
	return noValue, nil
}

// evalPrti emits the operand's value in decimal.
func (e *Evaluator) evalPrti(node *parser.Node) (result, error) {
	value, err := e.evalNode(node.Lhs)
	if err != nil {
		return noValue, err
	}
	n, err := e.asInteger(value)
	if err != nil {
		return noValue, err
	}
	if _, err := fmt.Fprintf(e.Writer, "%d", n); err != nil {
		return noValue, e.createError("output error: %v", err)
	}
	return noValue, nil
}

// evalPrts emits the operand's string content verbatim.
func (e *Evaluator) evalPrts(node *parser.Node) (result, error) {
	value, err := e.evalNode(node.Lhs)
	if err != nil {
		return noValue, err
	}
	str, ok := value.(*objects.String)
	if !ok {
		return noValue, e.createError("string operand is expected")
	}
	if _, err := fmt.Fprint(e.Writer, str.Value); err != nil {
		return noValue, e.createError("output error: %v", err)
	}
	return noValue, nil
}
