/*
File    : go-tiny/parser/ast_text.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-tiny/lexer"
	"github.com/akashmaji946/go-tiny/tinyerr"
)

// Listing renders the tree rooted at node in the pre-order AST text
// form: one line per node, leaves with their payload, interior kinds
// alone on a line followed by their two subtrees, and a missing child
// as a line containing exactly ";".
func (node *Node) Listing() string {
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

// WriteListing writes the pre-order text form of node to w.
func WriteListing(w io.Writer, node *Node) error {
	_, err := io.WriteString(w, node.Listing())
	return err
}

func writeNode(sb *strings.Builder, node *Node) {
	if node == nil {
		sb.WriteString(";\n")
		return
	}
	switch node.Kind {
	case IDENTIFIER_NODE:
		fmt.Fprintf(sb, "Identifier %s\n", node.Name)
	case INTEGER_NODE:
		fmt.Fprintf(sb, "Integer %d\n", node.Value)
	case STRING_NODE:
		fmt.Fprintf(sb, "String %s\n", lexer.QuoteString(node.Str))
	default:
		fmt.Fprintf(sb, "%s\n", node.Kind)
		writeNode(sb, node.Lhs)
		writeNode(sb, node.Rhs)
	}
}

// astReader rebuilds a tree from its pre-order text form.
type astReader struct {
	lines []string
	pos   int
}

// ReadAST parses the pre-order AST text form back into a tree.
// The reader accepts any Sequence shape whose in-order traversal visits
// the statements in program order, not only the left-deep chains the
// parser itself produces. Empty input yields an empty Sequence node.
func ReadAST(r io.Reader) (*Node, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, tinyerr.Newf(tinyerr.ReadError, "read failed: %v", err)
	}

	reader := &astReader{lines: lines}
	node, err := reader.makeNode()
	if err != nil {
		return nil, err
	}
	if node == nil {
		return NewInteriorNode(SEQUENCE_NODE, nil, nil), nil
	}
	return node, nil
}

// makeNode consumes one line and builds the node it describes,
// recursing for the two subtrees of interior kinds. A ";" line and an
// exhausted stream both mean "no node here".
func (rd *astReader) makeNode() (*Node, error) {
	if rd.pos >= len(rd.lines) {
		return nil, nil
	}
	line := strings.TrimSpace(rd.lines[rd.pos])
	rd.pos++

	if line == ";" {
		return nil, nil
	}

	kindName, payload := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		kindName, payload = line[:i], strings.TrimSpace(line[i+1:])
	}

	switch kindName {
	case string(IDENTIFIER_NODE):
		if payload == "" {
			return nil, tinyerr.New(tinyerr.ReadError, "identifier name is expected")
		}
		return NewIdentifierNode(payload), nil
	case string(INTEGER_NODE):
		value, err := strconv.ParseInt(payload, 10, 32)
		if err != nil {
			return nil, tinyerr.Newf(tinyerr.ReadError, "invalid integer payload: %s", payload)
		}
		return NewIntegerNode(int32(value)), nil
	case string(STRING_NODE):
		content, _, err := lexer.UnquoteString(payload)
		if err != nil {
			return nil, tinyerr.New(tinyerr.ReadError, err.Error())
		}
		return NewStringNode(content), nil
	}

	kind, ok := interiorNodeKinds[kindName]
	if !ok {
		return nil, tinyerr.Newf(tinyerr.ReadError, "unknown node kind: %s", kindName)
	}
	lhs, err := rd.makeNode()
	if err != nil {
		return nil, err
	}
	rhs, err := rd.makeNode()
	if err != nil {
		return nil, err
	}
	return NewInteriorNode(kind, lhs, rhs), nil
}
