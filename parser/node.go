/*
File    : go-tiny/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

// NodeKind tags an AST node. The underlying string value of each
// constant is the fixed kind name used by the pre-order AST text form,
// so a NodeKind prints directly into the serialized tree.
type NodeKind string

// NodeKind Constants:
// Leaves carry a payload and never have children; every other kind is
// an interior node with up to two child references.
const (
	// Leaves
	IDENTIFIER_NODE NodeKind = "Identifier" // variable reference, payload in Name
	INTEGER_NODE    NodeKind = "Integer"    // integer literal, payload in Value
	STRING_NODE     NodeKind = "String"     // string literal, payload in Str

	// Control
	SEQUENCE_NODE NodeKind = "Sequence" // statement threading; either child may be absent
	IF_NODE       NodeKind = "If"       // lhs = condition, rhs = nested If(then, else)
	WHILE_NODE    NodeKind = "While"    // lhs = condition, rhs = body

	// Statements
	ASSIGN_NODE NodeKind = "Assign" // lhs = Identifier, rhs = expression
	PRTC_NODE   NodeKind = "Prtc"   // lhs = expression printed as a character
	PRTS_NODE   NodeKind = "Prts"   // lhs = String printed verbatim
	PRTI_NODE   NodeKind = "Prti"   // lhs = expression printed as decimal

	// Unary operators (operand in lhs)
	NEGATE_NODE NodeKind = "Negate"
	NOT_NODE    NodeKind = "Not"

	// Binary operators (operands in lhs, rhs)
	MULTIPLY_NODE     NodeKind = "Multiply"
	DIVIDE_NODE       NodeKind = "Divide"
	MOD_NODE          NodeKind = "Mod"
	ADD_NODE          NodeKind = "Add"
	SUBTRACT_NODE     NodeKind = "Subtract"
	LESS_NODE         NodeKind = "Less"
	LESSEQUAL_NODE    NodeKind = "LessEqual"
	GREATER_NODE      NodeKind = "Greater"
	GREATEREQUAL_NODE NodeKind = "GreaterEqual"
	EQUAL_NODE        NodeKind = "Equal"
	NOTEQUAL_NODE     NodeKind = "NotEqual"
	AND_NODE          NodeKind = "And"
	OR_NODE           NodeKind = "Or"
)

// Node is a Tiny AST node: a tagged variant with up to two child
// references forming a binary tree. A node is created by the parser
// (or the AST reader) and immutable thereafter; it is owned exclusively
// by its parent, the root by the compilation.
//
// Shape invariants:
//   - binary op nodes have operands in Lhs and Rhs; unary ops use Lhs
//   - ASSIGN_NODE.Lhs is an IDENTIFIER_NODE
//   - IF_NODE.Rhs is itself an IF_NODE whose Lhs is the then-branch and
//     whose Rhs is the optional else-branch
//   - WHILE_NODE.Lhs is the condition, WHILE_NODE.Rhs the body
//   - SEQUENCE_NODE may have either child absent (a missing child is
//     the empty statement)
type Node struct {
	Kind  NodeKind // the variant tag
	Lhs   *Node    // left child, nil when absent
	Rhs   *Node    // right child, nil when absent
	Name  string   // identifier name (IDENTIFIER_NODE)
	Value int32    // integer value (INTEGER_NODE)
	Str   string   // decoded string content (STRING_NODE)
}

// NewIdentifierNode creates an Identifier leaf.
func NewIdentifierNode(name string) *Node {
	return &Node{Kind: IDENTIFIER_NODE, Name: name}
}

// NewIntegerNode creates an Integer leaf.
func NewIntegerNode(value int32) *Node {
	return &Node{Kind: INTEGER_NODE, Value: value}
}

// NewStringNode creates a String leaf holding decoded content.
func NewStringNode(content string) *Node {
	return &Node{Kind: STRING_NODE, Str: content}
}

// NewInteriorNode creates a node of the given kind with the given
// children. Either child may be nil.
func NewInteriorNode(kind NodeKind, lhs *Node, rhs *Node) *Node {
	return &Node{Kind: kind, Lhs: lhs, Rhs: rhs}
}

// IsLeaf reports whether the node's kind is one of the three payload
// leaves.
func (node *Node) IsLeaf() bool {
	switch node.Kind {
	case IDENTIFIER_NODE, INTEGER_NODE, STRING_NODE:
		return true
	}
	return false
}

// interiorNodeKinds indexes every non-leaf kind name, for the AST
// reader.
var interiorNodeKinds = map[string]NodeKind{}

func init() {
	for _, k := range []NodeKind{
		SEQUENCE_NODE, IF_NODE, WHILE_NODE,
		ASSIGN_NODE, PRTC_NODE, PRTS_NODE, PRTI_NODE,
		NEGATE_NODE, NOT_NODE,
		MULTIPLY_NODE, DIVIDE_NODE, MOD_NODE, ADD_NODE, SUBTRACT_NODE,
		LESS_NODE, LESSEQUAL_NODE, GREATER_NODE, GREATEREQUAL_NODE,
		EQUAL_NODE, NOTEQUAL_NODE, AND_NODE, OR_NODE,
	} {
		interiorNodeKinds[string(k)] = k
	}
}
