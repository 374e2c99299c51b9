/*
File    : go-tiny/cmd/vm/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command vm is the Tiny virtual machine driver: it assembles the
// bytecode listing produced by gen and interprets it, writing the
// program's output. It takes zero to two positional arguments (input
// file, output file) and no flags.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/go-tiny/code"
	"github.com/akashmaji946/go-tiny/file"
	"github.com/akashmaji946/go-tiny/vm"
)

func main() {
	args := os.Args[1:]
	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: vm [input-file [output-file]]")
		os.Exit(1)
	}

	input, err := file.ReadInput(args)
	fail(err)
	out, err := file.OpenOutput(args)
	fail(err)
	defer out.Close()

	program, err := code.Assemble(strings.NewReader(input))
	fail(err)

	w := bufio.NewWriter(out)
	fail(vm.New(program, w).Run())
	fail(w.Flush())
}

func fail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
