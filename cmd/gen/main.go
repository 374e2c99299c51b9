/*
File    : go-tiny/cmd/gen/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command gen is the Tiny code generator driver: it reads the pre-order
// AST text form produced by parse and writes the assembled bytecode
// listing. It takes zero to two positional arguments (input file,
// output file) and no flags.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/go-tiny/codegen"
	"github.com/akashmaji946/go-tiny/file"
	"github.com/akashmaji946/go-tiny/parser"
)

func main() {
	args := os.Args[1:]
	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: gen [input-file [output-file]]")
		os.Exit(1)
	}

	input, err := file.ReadInput(args)
	fail(err)
	out, err := file.OpenOutput(args)
	fail(err)
	defer out.Close()

	root, err := parser.ReadAST(strings.NewReader(input))
	fail(err)

	listing, err := codegen.GenerateListing(root)
	fail(err)

	_, err = io.WriteString(out, listing)
	fail(err)
}

func fail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
