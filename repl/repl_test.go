/*
File    : go-tiny/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"strings"
	"testing"
)

// TestPrintHelp verifies the '.help' text names both REPL commands.
func TestPrintHelp(t *testing.T) {
	repl := NewRepl("banner", "v0", "author", "----", "MIT", ">> ")
	var out bytes.Buffer
	repl.printHelp(&out)

	for _, want := range []string{".help", ".exit", "bindings persist"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help text missing %q:\n%s", want, out.String())
		}
	}
}

// TestBraceDelta verifies continuation tracking ignores braces inside
// string and character literals.
func TestBraceDelta(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"", 0},
		{"x = 1;", 0},
		{"while (x) {", 1},
		{"}", -1},
		{"{ { }", 1},
		{`print("{ not a brace }");`, 0},
		{`c = '{';`, 0},
		{`print("escaped \" } brace");`, 0},
		{`{ print("}"); `, 1},
	}

	for _, tt := range tests {
		if got := braceDelta(tt.line); got != tt.expected {
			t.Errorf("line %q: expected %d, got %d", tt.line, tt.expected, got)
		}
	}
}
