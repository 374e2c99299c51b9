/*
File    : go-tiny/cmd/parse/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command parse is the Tiny syntax analyzer driver: it reads the token
// text form produced by lex and writes the pre-order AST text form. It
// takes zero to two positional arguments (input file, output file) and
// no flags.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/go-tiny/file"
	"github.com/akashmaji946/go-tiny/lexer"
	"github.com/akashmaji946/go-tiny/parser"
)

func main() {
	args := os.Args[1:]
	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: parse [input-file [output-file]]")
		os.Exit(1)
	}

	input, err := file.ReadInput(args)
	fail(err)
	out, err := file.OpenOutput(args)
	fail(err)
	defer out.Close()

	tokens, err := lexer.ReadTokens(strings.NewReader(input))
	fail(err)

	root, err := parser.NewParser(tokens).Parse()
	fail(err)

	fail(parser.WriteListing(out, root))
}

func fail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
