/*
File    : go-tiny/code/asm.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package code

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-tiny/tinyerr"
)

// Assemble parses the bytecode text form into a Program. The first
// line is the header, followed by exactly the announced number of
// string-pool lines, followed by instruction lines. The leading address
// field of each instruction line and the absolute-target cross-check on
// jumps are ignored; only the relative offset inside the parentheses is
// read. Blank instruction lines are skipped. All failures are
// VirtualMachineErrors.
func Assemble(r io.Reader) (*Program, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, tinyerr.Newf(tinyerr.VirtualMachineError, "read failed: %v", err)
		}
		return nil, tinyerr.New(tinyerr.VirtualMachineError, "empty file")
	}
	dataSize, stringCount, err := readHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	program := &Program{DataSize: dataSize}
	for i := 0; i < stringCount; i++ {
		if !scanner.Scan() {
			return nil, tinyerr.New(tinyerr.VirtualMachineError, "unexpected EOF")
		}
		s, err := readQuoted(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, err
		}
		program.Strings = append(program.Strings, s)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := readInstruction(line, program); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, tinyerr.Newf(tinyerr.VirtualMachineError, "read failed: %v", err)
	}
	return program, nil
}

// readHeader parses "Datasize: <n> Strings: <m>".
func readHeader(line string) (dataSize int, stringCount int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, tinyerr.New(tinyerr.VirtualMachineError, "invalid datasize format.")
	}
	dataSize, err = strconv.Atoi(fields[1])
	if err != nil || dataSize < 0 {
		return 0, 0, tinyerr.New(tinyerr.VirtualMachineError, "invalid data size")
	}
	stringCount, err = strconv.Atoi(fields[3])
	if err != nil || stringCount < 0 {
		return 0, 0, tinyerr.New(tinyerr.VirtualMachineError, "invalid string data size")
	}
	return dataSize, stringCount, nil
}

// readQuoted decodes one quoted string-pool line, resolving the \n and
// \\ escapes.
func readQuoted(line string) (string, error) {
	if len(line) == 0 || line[0] != '"' {
		return "", tinyerr.New(tinyerr.VirtualMachineError, "invalid string")
	}
	var sb strings.Builder
	i := 1
	for i < len(line) {
		switch line[i] {
		case '"':
			return sb.String(), nil
		case '\\':
			if i+1 >= len(line) {
				return "", tinyerr.New(tinyerr.VirtualMachineError, "invalid escape")
			}
			switch line[i+1] {
			case 'n':
				sb.WriteByte('\n')
			case '\\':
				sb.WriteByte('\\')
			default:
				return "", tinyerr.New(tinyerr.VirtualMachineError, "invalid escape")
			}
			i += 2
		default:
			sb.WriteByte(line[i])
			i++
		}
	}
	return "", tinyerr.New(tinyerr.VirtualMachineError, "\" not found")
}

// readInstruction appends the encoding of one instruction line:
//
//	<addr> <mnemonic> [operand]
func readInstruction(line string, program *Program) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return tinyerr.New(tinyerr.VirtualMachineError, "invalid code")
	}

	op, ok := opcodeForMnemonic[fields[1]]
	if !ok {
		return tinyerr.New(tinyerr.VirtualMachineError, "illegal instruction")
	}

	if !op.HasOperand() {
		program.AppendOp(op)
		return nil
	}

	if len(fields) < 3 {
		return tinyerr.New(tinyerr.VirtualMachineError, "invalid code")
	}
	operandText := fields[2]
	switch op {
	case FETCH, STORE:
		// data address written as [i]
		operandText = strings.TrimSuffix(strings.TrimPrefix(operandText, "["), "]")
	case JMP, JZ:
		// relative offset written as (rel); the abs field is ignored
		operandText = strings.TrimSuffix(strings.TrimPrefix(operandText, "("), ")")
	}
	operand, err := strconv.ParseInt(operandText, 10, 32)
	if err != nil {
		return tinyerr.Newf(tinyerr.VirtualMachineError, "cannot convert to integer: %s", operandText)
	}
	program.AppendOpWithOperand(op, int32(operand))
	return nil
}
