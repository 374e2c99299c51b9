/*
File    : go-tiny/parser/ast_text_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"
	"testing"
)

// TestReadAST_RoundTrip verifies pre-order printing followed by the
// AST reader yields a structurally equal tree.
func TestReadAST_RoundTrip(t *testing.T) {
	sources := []string{
		"",
		";",
		"x = 5;",
		`print("Hello, World!\n");`,
		`phoenix_number = 142857; print(phoenix_number, "\n");`,
		"while (x > 0) { x = x - 1; putc('.'); }",
		"if (a && b || !c) y = 1; else y = 2;",
		`print("escape \\ and \n mix", 'x');`,
	}

	for _, src := range sources {
		root, err := parseSource(t, src)
		if err != nil {
			t.Fatalf("source %q: parse error: %v", src, err)
		}
		listing := root.Listing()

		reread, err := ReadAST(strings.NewReader(listing))
		if err != nil {
			t.Fatalf("source %q: read error: %v", src, err)
		}
		if got := reread.Listing(); got != listing {
			t.Errorf("source %q: round trip mismatch\nfirst:\n%s\nsecond:\n%s", src, listing, got)
		}
	}
}

// TestReadAST_AnySequenceShape verifies the reader accepts Sequence
// shapes other than the parser's left-deep chains, as long as in-order
// traversal lists the statements in program order.
func TestReadAST_AnySequenceShape(t *testing.T) {
	rightDeep := strings.Join([]string{
		"Sequence",
		"Assign",
		"Identifier a",
		"Integer 1",
		"Sequence",
		"Assign",
		"Identifier b",
		"Integer 2",
		";",
		"",
	}, "\n")

	root, err := ReadAST(strings.NewReader(rightDeep))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if root.Kind != SEQUENCE_NODE {
		t.Fatalf("expected Sequence root, got %s", root.Kind)
	}
	if root.Lhs == nil || root.Lhs.Kind != ASSIGN_NODE || root.Lhs.Lhs.Name != "a" {
		t.Errorf("first statement not preserved")
	}
	if root.Rhs == nil || root.Rhs.Kind != SEQUENCE_NODE || root.Rhs.Lhs.Lhs.Name != "b" {
		t.Errorf("second statement not preserved")
	}
	if got := root.Listing(); got != rightDeep {
		t.Errorf("round trip mismatch:\n%s\nvs:\n%s", rightDeep, got)
	}
}

// TestReadAST_Empty verifies empty input yields the empty Sequence.
func TestReadAST_Empty(t *testing.T) {
	root, err := ReadAST(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Kind != SEQUENCE_NODE || root.Lhs != nil || root.Rhs != nil {
		t.Errorf("expected empty Sequence, got %s", root.Listing())
	}
}

// TestReadAST_Errors verifies malformed listings fail with the
// expected message.
func TestReadAST_Errors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"Bogus\n;\n;\n", "unknown node kind: Bogus"},
		{"Integer xyz\n", "invalid integer payload"},
		{"Identifier\n", "identifier name is expected"},
		{"String \"bad \\t\"\n", "unknown escape sequence"},
		{"String noquote\n", `'"' is expected`},
	}

	for _, tt := range tests {
		_, err := ReadAST(strings.NewReader(tt.input))
		if err == nil {
			t.Errorf("input %q: expected error, got none", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.message) {
			t.Errorf("input %q: expected message %q, got %q", tt.input, tt.message, err.Error())
		}
	}
}
