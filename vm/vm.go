/*
File    : go-tiny/vm/vm.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package vm implements the stack virtual machine that interprets Tiny
// bytecode programs. The machine owns a program counter into the code
// image, a fixed-capacity evaluation stack of signed 32-bit integers,
// a zero-initialized data area, and the immutable string pool and code
// of the program. There is no heap; exceeding the stack capacity is an
// error, not a resize.
package vm

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/akashmaji946/go-tiny/code"
	"github.com/akashmaji946/go-tiny/tinyerr"
)

// DefaultStackSize is the evaluation-stack capacity used when the
// embedder does not choose one.
const DefaultStackSize = 1000

// VM is the execution state for one program run.
type VM struct {
	pc      int           // byte index into the code image
	sp      int           // number of live evaluation-stack slots
	stack   []int32       // fixed-capacity evaluation stack
	data    []int32       // data area, zero-initialized
	program *code.Program // immutable code and string pool
	writer  io.Writer     // output sink for the print opcodes
}

// New creates a VM for program writing to w, with the default stack
// capacity.
func New(program *code.Program, w io.Writer) *VM {
	return NewWithStackSize(program, w, DefaultStackSize)
}

// NewWithStackSize creates a VM with an explicit evaluation-stack
// capacity. A non-positive capacity falls back to the default.
func NewWithStackSize(program *code.Program, w io.Writer, stackSize int) *VM {
	if stackSize <= 0 {
		stackSize = DefaultStackSize
	}
	return &VM{
		stack:   make([]int32, stackSize),
		data:    make([]int32, program.DataSize),
		program: program,
		writer:  w,
	}
}

// Run interprets the program until HALT. Every malformed condition —
// running off the code image, an unknown opcode, stack overflow or
// underflow, a zero divisor, a bad data or string index, an output
// failure — aborts with a VirtualMachineError.
func (vm *VM) Run() error {
	if len(vm.program.Code) == 0 {
		return tinyerr.New(tinyerr.VirtualMachineError, "program has no code")
	}

	for {
		if vm.pc < 0 || vm.pc >= len(vm.program.Code) {
			return tinyerr.Newf(tinyerr.VirtualMachineError, "program counter out of range: %d", vm.pc)
		}
		op := code.Opcode(vm.program.Code[vm.pc])
		vm.pc++

		switch op {
		case code.FETCH:
			index, err := vm.readOperand()
			if err != nil {
				return err
			}
			if index < 0 || int(index) >= len(vm.data) {
				return tinyerr.Newf(tinyerr.VirtualMachineError, "data index out of range: %d", index)
			}
			if err := vm.push(vm.data[index]); err != nil {
				return err
			}

		case code.STORE:
			v, err := vm.pop()
			if err != nil {
				return err
			}
			index, err := vm.readOperand()
			if err != nil {
				return err
			}
			if index < 0 || int(index) >= len(vm.data) {
				return tinyerr.Newf(tinyerr.VirtualMachineError, "data index out of range: %d", index)
			}
			vm.data[index] = v

		case code.PUSH:
			v, err := vm.readOperand()
			if err != nil {
				return err
			}
			if err := vm.push(v); err != nil {
				return err
			}

		case code.JMP:
			offset, err := vm.peekOperand()
			if err != nil {
				return err
			}
			vm.pc += int(offset)

		case code.JZ:
			condition, err := vm.pop()
			if err != nil {
				return err
			}
			offset, err := vm.peekOperand()
			if err != nil {
				return err
			}
			if condition == 0 {
				vm.pc += int(offset)
			} else {
				vm.pc += code.OperandSize
			}

		case code.ADD, code.SUB, code.MUL, code.DIV, code.MOD,
			code.LT, code.GT, code.LE, code.GE, code.EQ, code.NE,
			code.AND, code.OR:
			if err := vm.binaryOp(op); err != nil {
				return err
			}

		case code.NEG:
			if vm.sp < 1 {
				return errUnderflow
			}
			vm.stack[vm.sp-1] = -vm.stack[vm.sp-1]

		case code.NOT:
			if vm.sp < 1 {
				return errUnderflow
			}
			if vm.stack[vm.sp-1] == 0 {
				vm.stack[vm.sp-1] = 1
			} else {
				vm.stack[vm.sp-1] = 0
			}

		case code.PRTC:
			v, err := vm.pop()
			if err != nil {
				return err
			}
			if v < 0 || !utf8.ValidRune(rune(v)) {
				return tinyerr.Newf(tinyerr.VirtualMachineError, "illegal character value: %d", v)
			}
			if _, err := fmt.Fprintf(vm.writer, "%c", rune(v)); err != nil {
				return tinyerr.Newf(tinyerr.VirtualMachineError, "output error: %v", err)
			}

		case code.PRTI:
			v, err := vm.pop()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(vm.writer, "%d", v); err != nil {
				return tinyerr.Newf(tinyerr.VirtualMachineError, "output error: %v", err)
			}

		case code.PRTS:
			v, err := vm.pop()
			if err != nil {
				return err
			}
			if v < 0 || int(v) >= len(vm.program.Strings) {
				return tinyerr.Newf(tinyerr.VirtualMachineError, "string index out of range: %d", v)
			}
			if _, err := io.WriteString(vm.writer, vm.program.Strings[v]); err != nil {
				return tinyerr.Newf(tinyerr.VirtualMachineError, "output error: %v", err)
			}

		case code.HALT:
			return nil

		default:
			return tinyerr.Newf(tinyerr.VirtualMachineError, "illegal instruction: %d", byte(op))
		}
	}
}

var (
	errUnderflow = tinyerr.New(tinyerr.VirtualMachineError, "stack underflow")
	errOverflow  = tinyerr.New(tinyerr.VirtualMachineError, "stack overflow")
)

// readOperand decodes the immediate at pc and advances past it.
func (vm *VM) readOperand() (int32, error) {
	v, err := vm.program.Int32At(vm.pc)
	if err != nil {
		return 0, err
	}
	vm.pc += code.OperandSize
	return v, nil
}

// peekOperand decodes the immediate at pc without advancing; the jump
// opcodes apply their relative offset from the immediate's own
// position.
func (vm *VM) peekOperand() (int32, error) {
	return vm.program.Int32At(vm.pc)
}

// push appends v to the evaluation stack.
func (vm *VM) push(v int32) error {
	if vm.sp >= len(vm.stack) {
		return errOverflow
	}
	vm.stack[vm.sp] = v
	vm.sp++
	return nil
}

// pop removes and returns the top of the evaluation stack.
func (vm *VM) pop() (int32, error) {
	if vm.sp < 1 {
		return 0, errUnderflow
	}
	vm.sp--
	return vm.stack[vm.sp], nil
}

// binaryOp pops the right then the left operand and pushes the result
// in place. Operands were pushed low-to-high, so the right operand is
// on top. Arithmetic wraps in two's complement; comparisons and the
// strict logicals yield 1/0.
func (vm *VM) binaryOp(op code.Opcode) error {
	if vm.sp < 2 {
		return errUnderflow
	}
	a := vm.stack[vm.sp-2]
	b := vm.stack[vm.sp-1]
	vm.sp--

	var v int32
	switch op {
	case code.ADD:
		v = a + b
	case code.SUB:
		v = a - b
	case code.MUL:
		v = a * b
	case code.DIV:
		if b == 0 {
			return tinyerr.New(tinyerr.VirtualMachineError, "division by zero")
		}
		v = a / b
	case code.MOD:
		if b == 0 {
			return tinyerr.New(tinyerr.VirtualMachineError, "modulo by zero")
		}
		v = a % b
	case code.LT:
		v = boolToInt32(a < b)
	case code.GT:
		v = boolToInt32(a > b)
	case code.LE:
		v = boolToInt32(a <= b)
	case code.GE:
		v = boolToInt32(a >= b)
	case code.EQ:
		v = boolToInt32(a == b)
	case code.NE:
		v = boolToInt32(a != b)
	case code.AND:
		v = boolToInt32(a != 0 && b != 0)
	case code.OR:
		v = boolToInt32(a != 0 || b != 0)
	}
	vm.stack[vm.sp-1] = v
	return nil
}

func boolToInt32(cond bool) int32 {
	if cond {
		return 1
	}
	return 0
}
