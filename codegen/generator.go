/*
File    : go-tiny/codegen/generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package codegen lowers a Tiny AST to a stack-oriented bytecode
// Program. It assigns data-area addresses to identifiers on first
// occurrence, interns string literals (duplicates share one pool
// index), and backpatches forward jumps once their targets are known.
// Jump offsets are relative to the byte after the jump's opcode; the
// same convention the virtual machine applies when it takes a jump.
package codegen

import (
	"github.com/akashmaji946/go-tiny/code"
	"github.com/akashmaji946/go-tiny/parser"
	"github.com/akashmaji946/go-tiny/tinyerr"
)

// binaryOpcodes maps binary AST node kinds to their opcode.
var binaryOpcodes = map[parser.NodeKind]code.Opcode{
	parser.MULTIPLY_NODE:     code.MUL,
	parser.DIVIDE_NODE:       code.DIV,
	parser.MOD_NODE:          code.MOD,
	parser.ADD_NODE:          code.ADD,
	parser.SUBTRACT_NODE:     code.SUB,
	parser.LESS_NODE:         code.LT,
	parser.LESSEQUAL_NODE:    code.LE,
	parser.GREATER_NODE:      code.GT,
	parser.GREATEREQUAL_NODE: code.GE,
	parser.EQUAL_NODE:        code.EQ,
	parser.NOTEQUAL_NODE:     code.NE,
	parser.AND_NODE:          code.AND,
	parser.OR_NODE:           code.OR,
}

// Generator holds the state of one code-generation run: the growing
// program and the compile-time symbol table.
type Generator struct {
	program  *code.Program
	dataAddr map[string]int32 // identifier -> data-area address, first-use-wins
}

// Generate lowers the tree rooted at root into a bytecode Program,
// appending the terminating HALT after the walk. Malformed trees fail
// with a CodeGenerationError.
func Generate(root *parser.Node) (*code.Program, error) {
	gen := &Generator{
		program:  &code.Program{},
		dataAddr: make(map[string]int32),
	}
	if err := gen.genNode(root); err != nil {
		return nil, err
	}
	gen.program.AppendOp(code.HALT)
	gen.program.DataSize = len(gen.dataAddr)
	return gen.program, nil
}

// GenerateListing lowers root and renders the result in the bytecode
// text form.
func GenerateListing(root *parser.Node) (string, error) {
	program, err := Generate(root)
	if err != nil {
		return "", err
	}
	return program.Disassemble()
}

// pc is the address the next emitted byte will occupy.
func (gen *Generator) pc() int {
	return len(gen.program.Code)
}

// genNode dispatches on the node kind. A nil node is the empty
// statement and emits nothing.
func (gen *Generator) genNode(node *parser.Node) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case parser.IDENTIFIER_NODE:
		return gen.genFetch(node)
	case parser.INTEGER_NODE:
		gen.program.AppendOpWithOperand(code.PUSH, node.Value)
		return nil
	case parser.SEQUENCE_NODE:
		return gen.genSequence(node)
	case parser.IF_NODE:
		return gen.genIf(node)
	case parser.WHILE_NODE:
		return gen.genWhile(node)
	case parser.ASSIGN_NODE:
		return gen.genAssign(node)
	case parser.PRTC_NODE:
		return gen.genPrtOperand(node, code.PRTC)
	case parser.PRTI_NODE:
		return gen.genPrtOperand(node, code.PRTI)
	case parser.PRTS_NODE:
		return gen.genPrts(node)
	case parser.NEGATE_NODE:
		return gen.genUnaryOp(node, code.NEG)
	case parser.NOT_NODE:
		return gen.genUnaryOp(node, code.NOT)
	default:
		if op, ok := binaryOpcodes[node.Kind]; ok {
			return gen.genBinaryOp(node, op)
		}
		return tinyerr.Newf(tinyerr.CodeGenerationError, "unknown instruction: %s", node.Kind)
	}
}

// genFetch emits FETCH for a variable reference. Fetching a name that
// was never assigned is a compile-time error.
func (gen *Generator) genFetch(node *parser.Node) error {
	addr, ok := gen.dataAddr[node.Name]
	if !ok {
		return tinyerr.Newf(tinyerr.CodeGenerationError, "unknown identifier: %s", node.Name)
	}
	gen.program.AppendOpWithOperand(code.FETCH, addr)
	return nil
}

// genSequence emits the left statement then the right one; either may
// be absent.
func (gen *Generator) genSequence(node *parser.Node) error {
	if node.Lhs != nil {
		if err := gen.genNode(node.Lhs); err != nil {
			return err
		}
	}
	if node.Rhs != nil {
		if err := gen.genNode(node.Rhs); err != nil {
			return err
		}
	}
	return nil
}

// genAssign emits the value expression followed by STORE to the
// identifier's data-area address, assigning the address here on first
// occurrence.
func (gen *Generator) genAssign(node *parser.Node) error {
	if node.Lhs == nil || node.Lhs.Kind != parser.IDENTIFIER_NODE {
		return tinyerr.New(tinyerr.CodeGenerationError, "identifier is expected")
	}
	if err := gen.genNode(node.Rhs); err != nil {
		return err
	}
	gen.program.AppendOpWithOperand(code.STORE, gen.internName(node.Lhs.Name))
	return nil
}

// genIf emits:
//
//	<cond> JZ else <then> [JMP end] else: [<else>] end:
//
// The JZ is patched to the else-branch (or the end when there is none);
// with an else-branch present, the JMP over it is patched to the end.
func (gen *Generator) genIf(node *parser.Node) error {
	branches := node.Rhs
	if branches == nil || branches.Kind != parser.IF_NODE {
		return tinyerr.New(tinyerr.CodeGenerationError, "malformed if node")
	}

	if err := gen.genNode(node.Lhs); err != nil { // condition
		return err
	}
	jzOperand := gen.program.AppendOpWithOperand(code.JZ, 0)

	if err := gen.genNode(branches.Lhs); err != nil { // then-branch
		return err
	}

	if branches.Rhs == nil {
		gen.patchJump(jzOperand)
		return nil
	}

	jmpOperand := gen.program.AppendOpWithOperand(code.JMP, 0)
	gen.patchJump(jzOperand)
	if err := gen.genNode(branches.Rhs); err != nil { // else-branch
		return err
	}
	gen.patchJump(jmpOperand)
	return nil
}

// genWhile emits:
//
//	entry: <cond> JZ end <body> JMP entry end:
func (gen *Generator) genWhile(node *parser.Node) error {
	entry := gen.pc()
	if err := gen.genNode(node.Lhs); err != nil { // condition
		return err
	}
	jzOperand := gen.program.AppendOpWithOperand(code.JZ, 0)

	if err := gen.genNode(node.Rhs); err != nil { // body
		return err
	}
	gen.program.AppendOpWithOperand(code.JMP, int32(entry-(gen.pc()+1)))
	gen.patchJump(jzOperand)
	return nil
}

// genPrts emits PUSH of the interned string index followed by PRTS.
// The operand must be a string literal.
func (gen *Generator) genPrts(node *parser.Node) error {
	if node.Lhs == nil || node.Lhs.Kind != parser.STRING_NODE {
		return tinyerr.New(tinyerr.CodeGenerationError, "string expected")
	}
	gen.program.AppendOpWithOperand(code.PUSH, gen.internString(node.Lhs.Str))
	gen.program.AppendOp(code.PRTS)
	return nil
}

// genPrtOperand emits the operand expression followed by a one-byte
// print opcode (PRTC or PRTI).
func (gen *Generator) genPrtOperand(node *parser.Node, op code.Opcode) error {
	if err := gen.genNode(node.Lhs); err != nil {
		return err
	}
	gen.program.AppendOp(op)
	return nil
}

// genUnaryOp emits the operand followed by the one-byte operator.
func (gen *Generator) genUnaryOp(node *parser.Node, op code.Opcode) error {
	if err := gen.genNode(node.Lhs); err != nil {
		return err
	}
	gen.program.AppendOp(op)
	return nil
}

// genBinaryOp emits the left operand, the right operand, then the
// one-byte operator, so the right operand ends up on top of the stack.
func (gen *Generator) genBinaryOp(node *parser.Node, op code.Opcode) error {
	if err := gen.genNode(node.Lhs); err != nil {
		return err
	}
	if err := gen.genNode(node.Rhs); err != nil {
		return err
	}
	gen.program.AppendOp(op)
	return nil
}

// patchJump rewrites the jump immediate at operandPos so the jump
// lands at the current pc. The offset is relative to the byte after
// the opcode, which is exactly operandPos.
func (gen *Generator) patchJump(operandPos int) {
	gen.program.PatchInt32(operandPos, int32(gen.pc()-operandPos))
}

// internName returns the data-area address of name, assigning the next
// free slot on first occurrence.
func (gen *Generator) internName(name string) int32 {
	if addr, ok := gen.dataAddr[name]; ok {
		return addr
	}
	addr := int32(len(gen.dataAddr))
	gen.dataAddr[name] = addr
	return addr
}

// internString returns the pool index of s, appending it on first use.
// Interning is idempotent: duplicate literals share one index.
func (gen *Generator) internString(s string) int32 {
	for i, pooled := range gen.program.Strings {
		if pooled == s {
			return int32(i)
		}
	}
	gen.program.Strings = append(gen.program.Strings, s)
	return int32(len(gen.program.Strings) - 1)
}
