/*
File    : go-tiny/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-tiny/objects"
	"github.com/akashmaji946/go-tiny/parser"
)

// evalIdentifier looks the name up in the environment. Reading an
// unset identifier is an error.
func (e *Evaluator) evalIdentifier(node *parser.Node) (result, error) {
	value, ok := e.Scp.LookUp(node.Name)
	if !ok {
		return noValue, e.createError("undefined variable: %s", node.Name)
	}
	return value, nil
}

// evalLiteral materializes an Integer or String leaf.
func (e *Evaluator) evalLiteral(node *parser.Node) (result, error) {
	if node.Kind == parser.INTEGER_NODE {
		return &objects.Integer{Value: node.Value}, nil
	}
	return &objects.String{Value: node.Str}, nil
}

// evalUnaryOp evaluates Negate and Not on an integer operand.
// "Not x" is 1 iff x == 0.
func (e *Evaluator) evalUnaryOp(node *parser.Node) (result, error) {
	value, err := e.evalNode(node.Lhs)
	if err != nil {
		return noValue, err
	}
	operand, err := e.asInteger(value)
	if err != nil {
		return noValue, err
	}

	switch node.Kind {
	case parser.NEGATE_NODE:
		return &objects.Integer{Value: -operand}, nil
	case parser.NOT_NODE:
		if operand == 0 {
			return &objects.Integer{Value: 1}, nil
		}
		return &objects.Integer{Value: 0}, nil
	default:
		return noValue, e.createError("invalid unary operator: %s", node.Kind)
	}
}

// evalBinaryOp evaluates a binary operator node. Both operands are
// always evaluated ('&&' and '||' do not short-circuit) and must be
// integers. Comparisons and logicals yield integer 1/0; arithmetic
// wraps in two's complement; division and modulus truncate toward zero
// and fail on a zero divisor.
func (e *Evaluator) evalBinaryOp(node *parser.Node) (result, error) {
	lhsValue, err := e.evalNode(node.Lhs)
	if err != nil {
		return noValue, err
	}
	rhsValue, err := e.evalNode(node.Rhs)
	if err != nil {
		return noValue, err
	}

	a, err := e.asInteger(lhsValue)
	if err != nil {
		return noValue, err
	}
	b, err := e.asInteger(rhsValue)
	if err != nil {
		return noValue, err
	}

	boolToInt := func(cond bool) *objects.Integer {
		if cond {
			return &objects.Integer{Value: 1}
		}
		return &objects.Integer{Value: 0}
	}

	switch node.Kind {
	case parser.MULTIPLY_NODE:
		return &objects.Integer{Value: a * b}, nil
	case parser.DIVIDE_NODE:
		if b == 0 {
			return noValue, e.createError("division by zero")
		}
		return &objects.Integer{Value: a / b}, nil
	case parser.MOD_NODE:
		if b == 0 {
			return noValue, e.createError("modulo by zero")
		}
		return &objects.Integer{Value: a % b}, nil
	case parser.ADD_NODE:
		return &objects.Integer{Value: a + b}, nil
	case parser.SUBTRACT_NODE:
		return &objects.Integer{Value: a - b}, nil
	case parser.LESS_NODE:
		return boolToInt(a < b), nil
	case parser.LESSEQUAL_NODE:
		return boolToInt(a <= b), nil
	case parser.GREATER_NODE:
		return boolToInt(a > b), nil
	case parser.GREATEREQUAL_NODE:
		return boolToInt(a >= b), nil
	case parser.EQUAL_NODE:
		return boolToInt(a == b), nil
	case parser.NOTEQUAL_NODE:
		return boolToInt(a != b), nil
	case parser.AND_NODE:
		return boolToInt(a != 0 && b != 0), nil
	case parser.OR_NODE:
		return boolToInt(a != 0 || b != 0), nil
	default:
		return noValue, e.createError("invalid binary operator: %s", node.Kind)
	}
}
