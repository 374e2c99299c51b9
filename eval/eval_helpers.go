/*
File    : go-tiny/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-tiny/objects"
	"github.com/akashmaji946/go-tiny/tinyerr"
)

// result is the value produced by evaluating a node. Statement nodes
// produce noValue.
type result = objects.TinyObject

// noValue is the result of statement nodes.
var noValue result

// createError creates an InterpretationError with a formatted message.
func (e *Evaluator) createError(format string, args ...interface{}) error {
	return tinyerr.Newf(tinyerr.InterpretationError, format, args...)
}

// asInteger narrows an evaluation result to its int32 value, failing
// when the result is missing or not an integer.
func (e *Evaluator) asInteger(value result) (int32, error) {
	if value == nil {
		return 0, e.createError("expression is expected")
	}
	integer, ok := value.(*objects.Integer)
	if !ok {
		return 0, e.createError("integer operand is expected, got %s", value.GetType())
	}
	return integer.Value, nil
}
