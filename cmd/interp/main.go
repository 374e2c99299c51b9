/*
File    : go-tiny/cmd/interp/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command interp is the Tiny AST interpreter driver: it reads the
// pre-order AST text form produced by parse and executes the tree
// directly, writing the program's output. It takes zero to two
// positional arguments (input file, output file) and no flags.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/go-tiny/eval"
	"github.com/akashmaji946/go-tiny/file"
	"github.com/akashmaji946/go-tiny/parser"
)

func main() {
	args := os.Args[1:]
	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: interp [input-file [output-file]]")
		os.Exit(1)
	}

	input, err := file.ReadInput(args)
	fail(err)
	out, err := file.OpenOutput(args)
	fail(err)
	defer out.Close()

	root, err := parser.ReadAST(strings.NewReader(input))
	fail(err)

	w := bufio.NewWriter(out)
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(w)
	fail(evaluator.Eval(root))
	fail(w.Flush())
}

func fail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
