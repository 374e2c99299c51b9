/*
File    : go-tiny/cmd/lex/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command lex is the Tiny lexical analyzer driver: it reads source
// text and writes the token text form, one token per line, ending with
// End_of_input. It takes zero to two positional arguments (input file,
// output file) and no flags.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/akashmaji946/go-tiny/file"
	"github.com/akashmaji946/go-tiny/lexer"
)

func main() {
	args := os.Args[1:]
	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: lex [input-file [output-file]]")
		os.Exit(1)
	}

	src, err := file.ReadInput(args)
	fail(err)
	out, err := file.OpenOutput(args)
	fail(err)
	defer out.Close()

	lex := lexer.NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	fail(err)

	w := bufio.NewWriter(out)
	for _, token := range tokens {
		fmt.Fprintln(w, token.String())
	}
	fail(w.Flush())
}

func fail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
