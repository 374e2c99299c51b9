/*
File    : go-tiny/tinyerr/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package tinyerr defines the single error type shared by every stage
// of the Tiny toolchain. Each stage fails with a tinyerr.Error carrying
// the kind of the failing stage and a human-readable message; lexer
// errors additionally carry the (line, column) of the offending input.
// Errors propagate outward from the failing operation and no stage
// attempts recovery.
package tinyerr

import "fmt"

// Kind classifies an Error by the stage that produced it.
type Kind int

// The error kinds, one per stage plus ReadError for malformed
// intermediate text forms.
const (
	ReadError Kind = iota
	LexicalError
	SyntaxError
	InterpretationError
	CodeGenerationError
	VirtualMachineError
)

// String returns the fixed name of the kind.
func (k Kind) String() string {
	switch k {
	case ReadError:
		return "ReadError"
	case LexicalError:
		return "LexicalError"
	case SyntaxError:
		return "SyntaxError"
	case InterpretationError:
		return "InterpretationError"
	case CodeGenerationError:
		return "CodeGenerationError"
	case VirtualMachineError:
		return "VirtualMachineError"
	default:
		return "UnknownError"
	}
}

// Error is the error type used throughout the toolchain.
// Line and Column are 1-based and only meaningful when HasPosition is true.
type Error struct {
	Kind        Kind   // which stage failed
	Message     string // human-readable description
	Line        int    // 1-based source line (lexer errors)
	Column      int    // 1-based source column (lexer errors)
	HasPosition bool   // whether Line/Column are set
}

// New creates an Error of the given kind with a plain message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt creates an Error pinned to a source position. Used by the lexer,
// whose errors must name the (line, column) of the offending character.
func NewAt(kind Kind, line int, column int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:        kind,
		Message:     fmt.Sprintf(format, args...),
		Line:        line,
		Column:      column,
		HasPosition: true,
	}
}

// Error implements the error interface.
// The rendering is "<Kind>: <message>", with the position appended
// when one is attached, e.g. "LexicalError: unexpected EOI (4, 12)".
func (e *Error) Error() string {
	if e.HasPosition {
		return fmt.Sprintf("%s: %s (%d, %d)", e.Kind, e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf reports the Kind of err if it is a tinyerr.Error.
// The second return is false for nil and for foreign error values.
func KindOf(err error) (Kind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}
