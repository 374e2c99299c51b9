/*
File    : go-tiny/codegen/generator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"strings"
	"testing"

	"github.com/akashmaji946/go-tiny/code"
	"github.com/akashmaji946/go-tiny/parser"
)

// compile is a test helper running source through the front end and
// the code generator.
func compile(t *testing.T, src string) (*code.Program, error) {
	t.Helper()
	par, err := parser.NewParserFromSource(src)
	if err != nil {
		t.Fatalf("source %q: lex error: %v", src, err)
	}
	root, err := par.Parse()
	if err != nil {
		t.Fatalf("source %q: parse error: %v", src, err)
	}
	return Generate(root)
}

// compileListing compiles and renders the bytecode text form.
func compileListing(t *testing.T, src string) string {
	t.Helper()
	program, err := compile(t, src)
	if err != nil {
		t.Fatalf("source %q: codegen error: %v", src, err)
	}
	listing, err := program.Disassemble()
	if err != nil {
		t.Fatalf("source %q: disassemble error: %v", src, err)
	}
	return listing
}

// TestGenerate_Listings verifies emission, addresses, and jump offsets
// through the bytecode text form.
func TestGenerate_Listings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// the empty program is just a halt
		{
			"",
			"Datasize: 0 Strings: 0\n" +
				"0 halt\n",
		},
		{
			"x = 5;",
			"Datasize: 1 Strings: 0\n" +
				"0 push 5\n" +
				"5 store [0]\n" +
				"10 halt\n",
		},
		{
			`print("Hello, World!\n");`,
			"Datasize: 0 Strings: 1\n" +
				"\"Hello, World!\\n\"\n" +
				"0 push 0\n" +
				"5 prts\n" +
				"6 halt\n",
		},
		{
			"x = 1 + 2 * 3;",
			"Datasize: 1 Strings: 0\n" +
				"0 push 1\n" +
				"5 push 2\n" +
				"10 push 3\n" +
				"15 mul\n" +
				"16 add\n" +
				"17 store [0]\n" +
				"22 halt\n",
		},
		{
			"x = 1; putc(-x); print(!x);",
			"Datasize: 1 Strings: 0\n" +
				"0 push 1\n" +
				"5 store [0]\n" +
				"10 fetch [0]\n" +
				"15 neg\n" +
				"16 prtc\n" +
				"17 fetch [0]\n" +
				"22 not\n" +
				"23 prti\n" +
				"24 halt\n",
		},
		// if without else: the jz lands past the then-branch
		{
			"a = 1; if (a) a = 2;",
			"Datasize: 1 Strings: 0\n" +
				"0 push 1\n" +
				"5 store [0]\n" +
				"10 fetch [0]\n" +
				"15 jz (14) 30\n" +
				"20 push 2\n" +
				"25 store [0]\n" +
				"30 halt\n",
		},
		// if/else: jz to the else-branch, jmp over it to the end
		{
			`a = 1; if (a) print("yes"); else print("no");`,
			"Datasize: 1 Strings: 2\n" +
				"\"yes\"\n" +
				"\"no\"\n" +
				"0 push 1\n" +
				"5 store [0]\n" +
				"10 fetch [0]\n" +
				"15 jz (15) 31\n" +
				"20 push 0\n" +
				"25 prts\n" +
				"26 jmp (10) 37\n" +
				"31 push 1\n" +
				"36 prts\n" +
				"37 halt\n",
		},
		// while: backward jmp to the condition, jz past the loop
		{
			"i = 1; while (i < 3) i = i + 1;",
			"Datasize: 1 Strings: 0\n" +
				"0 push 1\n" +
				"5 store [0]\n" +
				"10 fetch [0]\n" +
				"15 push 3\n" +
				"20 lt\n" +
				"21 jz (25) 47\n" +
				"26 fetch [0]\n" +
				"31 push 1\n" +
				"36 add\n" +
				"37 store [0]\n" +
				"42 jmp (-33) 10\n" +
				"47 halt\n",
		},
	}

	for _, tt := range tests {
		if got := compileListing(t, tt.input); got != tt.expected {
			t.Errorf("input %q:\nexpected:\n%s\ngot:\n%s", tt.input, tt.expected, got)
		}
	}
}

// TestGenerate_StringInterning verifies duplicate literals share one
// pool index and addresses assign in first-occurrence order.
func TestGenerate_StringInterning(t *testing.T) {
	program, err := compile(t, `print("a", "b", "a"); print("b");`)
	if err != nil {
		t.Fatalf("codegen error: %v", err)
	}
	if len(program.Strings) != 2 {
		t.Fatalf("expected 2 pooled strings, got %d", len(program.Strings))
	}
	if program.Strings[0] != "a" || program.Strings[1] != "b" {
		t.Errorf("pool order wrong: %q", program.Strings)
	}
}

// TestGenerate_DataAddresses verifies identifier addresses assign on
// first occurrence and are reused afterwards.
func TestGenerate_DataAddresses(t *testing.T) {
	listing := compileListing(t, "b = 1; a = 2; b = a;")
	expected := "Datasize: 2 Strings: 0\n" +
		"0 push 1\n" +
		"5 store [0]\n" +
		"10 push 2\n" +
		"15 store [1]\n" +
		"20 fetch [1]\n" +
		"25 store [0]\n" +
		"30 halt\n"
	if listing != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, listing)
	}
}

// TestGenerate_HaltIsLast verifies no code is emitted after the final
// halt.
func TestGenerate_HaltIsLast(t *testing.T) {
	program, err := compile(t, "x = 1; while (x) x = x - 1;")
	if err != nil {
		t.Fatalf("codegen error: %v", err)
	}
	if program.Code[len(program.Code)-1] != byte(code.HALT) {
		t.Errorf("last instruction is not halt")
	}
}

// TestGenerate_JumpTargetsInRange verifies every jump lands inside the
// code image.
func TestGenerate_JumpTargetsInRange(t *testing.T) {
	program, err := compile(t, `
n = 5;
while (n > 0) {
    if (n % 2) print("odd\n"); else print("even\n");
    n = n - 1;
}
`)
	if err != nil {
		t.Fatalf("codegen error: %v", err)
	}

	pc := 0
	for pc < len(program.Code) {
		op := code.Opcode(program.Code[pc])
		if op == code.JMP || op == code.JZ {
			rel, err := program.Int32At(pc + 1)
			if err != nil {
				t.Fatalf("truncated jump at %d", pc)
			}
			target := pc + 1 + int(rel)
			if target < 0 || target > len(program.Code) {
				t.Errorf("jump at %d targets %d, outside [0, %d]", pc, target, len(program.Code))
			}
		}
		pc += op.Width()
	}
}

// TestGenerate_Errors verifies malformed trees and fetches of unknown
// names fail with the expected message.
func TestGenerate_Errors(t *testing.T) {
	// fetch of a never-assigned identifier
	_, err := compile(t, "x = y;")
	if err == nil || !strings.Contains(err.Error(), "unknown identifier: y") {
		t.Errorf("expected unknown identifier error, got %v", err)
	}

	// Prts whose child is not a string
	bad := parser.NewInteriorNode(parser.PRTS_NODE, parser.NewIntegerNode(1), nil)
	if _, err := Generate(bad); err == nil || !strings.Contains(err.Error(), "string expected") {
		t.Errorf("expected string expected error, got %v", err)
	}

	// Assign whose lhs is not an identifier
	bad = parser.NewInteriorNode(parser.ASSIGN_NODE, parser.NewIntegerNode(1), parser.NewIntegerNode(2))
	if _, err := Generate(bad); err == nil || !strings.Contains(err.Error(), "identifier is expected") {
		t.Errorf("expected identifier is expected error, got %v", err)
	}
}
