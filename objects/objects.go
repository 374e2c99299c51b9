/*
File    : go-tiny/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the runtime value types for the Tiny tree
// interpreter. Tiny values are signed 32-bit integers and immutable
// strings; both implement the TinyObject interface, which allows type
// checking and display without knowing the concrete type.
package objects

import "fmt"

// TinyType represents the type of a Tiny object as a string constant.
type TinyType string

const (
	// IntegerType represents signed 32-bit integer values
	IntegerType TinyType = "int"
	// StringType represents immutable string values
	StringType TinyType = "string"
)

// TinyObject is the core interface that all Tiny runtime values
// implement.
type TinyObject interface {
	// GetType returns the TinyType of the object, used for type checking
	GetType() TinyType
	// ToString returns the display form of the value
	ToString() string
}

// Integer wraps an int32 value.
type Integer struct {
	Value int32
}

// GetType returns the type of the Integer object.
func (i *Integer) GetType() TinyType { return IntegerType }

// ToString returns the decimal form of the value.
func (i *Integer) ToString() string { return fmt.Sprintf("%d", i.Value) }

// String wraps a Go string.
type String struct {
	Value string
}

// GetType returns the type of the String object.
func (s *String) GetType() TinyType { return StringType }

// ToString returns the string content verbatim.
func (s *String) ToString() string { return s.Value }
