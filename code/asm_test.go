/*
File    : go-tiny/code/asm_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package code

import (
	"strings"
	"testing"
)

// TestAssemble_RoundTrip verifies assembling a listing and
// disassembling the result reproduces it.
func TestAssemble_RoundTrip(t *testing.T) {
	listing := "Datasize: 2 Strings: 2\n" +
		"\"count is: \"\n" +
		"\"\\n\"\n" +
		"0 push 1\n" +
		"5 store [0]\n" +
		"10 fetch [0]\n" +
		"15 push 10\n" +
		"20 lt\n" +
		"21 jz (43) 65\n" +
		"26 push 0\n" +
		"31 prts\n" +
		"32 fetch [0]\n" +
		"37 prti\n" +
		"38 push 1\n" +
		"43 prts\n" +
		"44 fetch [0]\n" +
		"49 push 1\n" +
		"54 add\n" +
		"55 store [0]\n" +
		"60 jmp (-51) 10\n" +
		"65 halt\n"

	program, err := Assemble(strings.NewReader(listing))
	if err != nil {
		t.Fatalf("assemble error: %v", err)
	}
	if program.DataSize != 2 || len(program.Strings) != 2 {
		t.Fatalf("header wrong: datasize=%d strings=%d", program.DataSize, len(program.Strings))
	}
	if program.Strings[0] != "count is: " || program.Strings[1] != "\n" {
		t.Errorf("string pool wrong: %q", program.Strings)
	}

	got, err := program.Disassemble()
	if err != nil {
		t.Fatalf("disassemble error: %v", err)
	}
	if got != listing {
		t.Errorf("round trip mismatch:\nexpected:\n%s\ngot:\n%s", listing, got)
	}
}

// TestAssemble_IgnoresAddressAndAbs verifies the assembler reads only
// the mnemonic and the relative operand; addresses and the abs
// cross-check are decorative.
func TestAssemble_IgnoresAddressAndAbs(t *testing.T) {
	program, err := Assemble(strings.NewReader(
		"Datasize: 0 Strings: 0\n" +
			"999 push 7\n" +
			"999 jz (1) 12345\n" +
			"999 halt\n" +
			"999 halt\n"))
	if err != nil {
		t.Fatalf("assemble error: %v", err)
	}
	expected := []byte{
		byte(PUSH), 7, 0, 0, 0,
		byte(JZ), 1, 0, 0, 0,
		byte(HALT),
		byte(HALT),
	}
	if len(program.Code) != len(expected) {
		t.Fatalf("code length %d, expected %d", len(program.Code), len(expected))
	}
	for i := range expected {
		if program.Code[i] != expected[i] {
			t.Errorf("byte %d: expected %#x, got %#x", i, expected[i], program.Code[i])
		}
	}
}

// TestAssemble_SkipsBlankLines verifies blank instruction lines are
// tolerated.
func TestAssemble_SkipsBlankLines(t *testing.T) {
	program, err := Assemble(strings.NewReader(
		"Datasize: 0 Strings: 0\n\n0 push 1\n\n5 halt\n\n"))
	if err != nil {
		t.Fatalf("assemble error: %v", err)
	}
	if len(program.Code) != 6 {
		t.Errorf("code length %d, expected 6", len(program.Code))
	}
}

// TestAssemble_Errors verifies malformed listings fail with a
// VirtualMachineError.
func TestAssemble_Errors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"", "empty file"},
		{"Datasize: 1\n", "invalid datasize format."},
		{"Datasize: x Strings: 0\n", "invalid data size"},
		{"Datasize: 0 Strings: y\n", "invalid string data size"},
		{"Datasize: 0 Strings: 1\n", "unexpected EOF"},
		{"Datasize: 0 Strings: 1\nnot quoted\n", "invalid string"},
		{"Datasize: 0 Strings: 1\n\"bad \\t\"\n", "invalid escape"},
		{"Datasize: 0 Strings: 1\n\"unterminated\n", "\" not found"},
		{"Datasize: 0 Strings: 0\n0 frobnicate\n", "illegal instruction"},
		{"Datasize: 0 Strings: 0\nhalt\n", "invalid code"},
		{"Datasize: 0 Strings: 0\n0 push\n", "invalid code"},
		{"Datasize: 0 Strings: 0\n0 push abc\n", "cannot convert to integer: abc"},
	}

	for _, tt := range tests {
		_, err := Assemble(strings.NewReader(tt.input))
		if err == nil {
			t.Errorf("input %q: expected error, got none", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.message) {
			t.Errorf("input %q: expected message %q, got %q", tt.input, tt.message, err.Error())
		}
		if !strings.Contains(err.Error(), "VirtualMachineError") {
			t.Errorf("input %q: expected a VirtualMachineError, got %q", tt.input, err.Error())
		}
	}
}
