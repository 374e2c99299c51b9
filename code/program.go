/*
File    : go-tiny/code/program.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package code

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-tiny/lexer"
	"github.com/akashmaji946/go-tiny/tinyerr"
)

// OperandSize is the encoded size of an instruction immediate.
const OperandSize = 4

// Program is an assembled Tiny bytecode program: the data-area size,
// the pool of decoded string literals, and the contiguous code image.
// Instruction addresses are byte offsets into Code; jump immediates are
// signed offsets relative to the byte after the jump's opcode. A
// well-formed program ends execution at a HALT opcode.
type Program struct {
	DataSize int      // number of data-area slots
	Strings  []string // string pool, indexed 0..len-1
	Code     []byte   // the code image
}

// PutInt32 encodes v little-endian into buf, which must hold at least
// OperandSize bytes.
func PutInt32(buf []byte, v int32) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
}

// Int32At decodes the little-endian int32 stored at pos, failing when
// fewer than OperandSize bytes remain.
func (p *Program) Int32At(pos int) (int32, error) {
	if pos < 0 || pos+OperandSize > len(p.Code) {
		return 0, tinyerr.Newf(tinyerr.VirtualMachineError, "truncated instruction at %d", pos)
	}
	return int32(p.Code[pos]) |
		int32(p.Code[pos+1])<<8 |
		int32(p.Code[pos+2])<<16 |
		int32(p.Code[pos+3])<<24, nil
}

// AppendOp appends a bare opcode and returns its address.
func (p *Program) AppendOp(op Opcode) int {
	addr := len(p.Code)
	p.Code = append(p.Code, byte(op))
	return addr
}

// AppendOpWithOperand appends an opcode plus immediate and returns the
// position of the immediate, which a caller may later backpatch.
func (p *Program) AppendOpWithOperand(op Opcode, operand int32) int {
	p.Code = append(p.Code, byte(op))
	pos := len(p.Code)
	var buf [OperandSize]byte
	PutInt32(buf[:], operand)
	p.Code = append(p.Code, buf[:]...)
	return pos
}

// PatchInt32 rewrites the immediate stored at pos.
func (p *Program) PatchInt32(pos int, v int32) {
	PutInt32(p.Code[pos:pos+OperandSize], v)
}

// Disassemble renders the program in the bytecode text form:
//
//	Datasize: <n> Strings: <m>
//	"<string 0>"
//	...
//	<addr> <mnemonic> [operand]
//
// Jump operands are printed as "(rel) abs" where abs = addr + 1 + rel
// is a cross-check only; the assembler reads just the relative form.
func (p *Program) Disassemble() (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Datasize: %d Strings: %d\n", p.DataSize, len(p.Strings))
	for _, s := range p.Strings {
		sb.WriteString(lexer.QuoteString(s))
		sb.WriteByte('\n')
	}

	pc := 0
	for pc < len(p.Code) {
		addr := pc
		op := Opcode(p.Code[pc])
		if op.Mnemonic() == "" {
			return "", tinyerr.Newf(tinyerr.VirtualMachineError, "illegal instruction: %d", p.Code[pc])
		}
		pc++

		if !op.HasOperand() {
			fmt.Fprintf(&sb, "%d %s\n", addr, op.Mnemonic())
			continue
		}

		operand, err := p.Int32At(pc)
		if err != nil {
			return "", err
		}
		pc += OperandSize

		switch op {
		case FETCH, STORE:
			fmt.Fprintf(&sb, "%d %s [%d]\n", addr, op.Mnemonic(), operand)
		case PUSH:
			fmt.Fprintf(&sb, "%d %s %d\n", addr, op.Mnemonic(), operand)
		case JMP, JZ:
			fmt.Fprintf(&sb, "%d %s (%d) %d\n", addr, op.Mnemonic(), operand, addr+1+int(operand))
		}
	}
	return sb.String(), nil
}
