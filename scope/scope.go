/*
File    : go-tiny/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the variable environment used by the Tiny
// tree interpreter and the REPL. Tiny itself has a single global
// namespace, but the environment is structured as a chain so that an
// embedder (the REPL keeps one scope alive across inputs) can layer
// bindings if it needs to.
package scope

import "github.com/akashmaji946/go-tiny/objects"

// Scope maps variable names to their current values. Lookup walks the
// parent chain; binding always writes the local table.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.TinyObject

	// Parent points to the enclosing scope; nil for the global scope
	Parent *Scope
}

// NewScope creates a Scope with the specified parent, or a global
// scope when parent is nil.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.TinyObject),
		Parent:    parent,
	}
}

// Bind sets name to value in this scope, shadowing any binding of the
// same name in a parent.
func (scp *Scope) Bind(name string, value objects.TinyObject) {
	scp.Variables[name] = value
}

// LookUp resolves name through the scope chain. The second return is
// false when the name is unbound everywhere.
func (scp *Scope) LookUp(name string) (objects.TinyObject, bool) {
	for s := scp; s != nil; s = s.Parent {
		if value, ok := s.Variables[name]; ok {
			return value, true
		}
	}
	return nil, false
}
