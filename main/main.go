/*
File    : go-tiny/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the unified entry point for the Tiny toolchain.
It provides two modes of operation:
1. REPL Mode (default): interactive evaluation with persistent bindings
2. Stage Mode: run one pipeline stage, or a composed pipeline, over
   files or stdin/stdout

The individual stage drivers under cmd/ stay plain: each one wires
exactly one stage to its input and output. This binary composes them
in-process as a convenience; the serialized text forms remain the
contract between stages.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/go-tiny/code"
	"github.com/akashmaji946/go-tiny/codegen"
	"github.com/akashmaji946/go-tiny/config"
	"github.com/akashmaji946/go-tiny/eval"
	"github.com/akashmaji946/go-tiny/file"
	"github.com/akashmaji946/go-tiny/lexer"
	"github.com/akashmaji946/go-tiny/parser"
	"github.com/akashmaji946/go-tiny/repl"
	"github.com/akashmaji946/go-tiny/vm"
	"github.com/fatih/color"
)

// VERSION represents the current version of the Tiny toolchain
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the toolchain's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "tiny >>> "

// BANNER is the logo displayed when starting the REPL
var BANNER = `
  ______  ____  _  __ __  __
 /_  __/ /  _/ / |/ / \ \/ /
  / /   _/ /  /    /   \  /
 /_/   /___/ /_/|_/    /_/
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

var redColor = color.New(color.FgRed)

// main dispatches on the first argument:
//
//	go-tiny                      - start the REPL
//	go-tiny lex     [in [out]]   - source -> token stream
//	go-tiny parse   [in [out]]   - token stream -> AST listing
//	go-tiny gen     [in [out]]   - AST listing -> bytecode listing
//	go-tiny run     [in [out]]   - bytecode listing -> program output
//	go-tiny interp  [in [out]]   - AST listing -> program output
//	go-tiny compile [in [out]]   - source -> bytecode listing
//	go-tiny exec    [in [out]]   - source -> program output (via the VM)
func main() {
	cfg, err := config.Load()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
	}

	if len(os.Args) < 2 {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, cfg.Repl.Prompt)
		repler.Colors = cfg.Repl.ColorOutput
		repler.Start(os.Stdout)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "--help", "-h", "help":
		showHelp()
	case "--version", "-v", "version":
		showVersion()
	case "lex":
		runStage(args, stageLex)
	case "parse":
		runStage(args, stageParse)
	case "gen":
		runStage(args, stageGen)
	case "run":
		runStage(args, func(input string, out io.Writer) error {
			return stageRun(input, out, cfg.VM.StackSize)
		})
	case "interp":
		runStage(args, stageInterp)
	case "compile":
		runStage(args, stageCompile)
	case "exec":
		runStage(args, func(input string, out io.Writer) error {
			return stageExec(input, out, cfg.VM.StackSize)
		})
	default:
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] unknown command: %s\n", command)
		showHelp()
		os.Exit(1)
	}
}

// runStage applies one stage function to the input and output selected
// by the positional arguments, reporting any error and exiting nonzero.
func runStage(args []string, stage func(input string, out io.Writer) error) {
	if len(args) > 2 {
		redColor.Fprintln(os.Stderr, "[USAGE ERROR] at most two positional arguments are accepted")
		os.Exit(1)
	}

	input, err := file.ReadInput(args)
	fatal(err)
	out, err := file.OpenOutput(args)
	fatal(err)

	w := bufio.NewWriter(out)
	err = stage(input, w)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	out.Close()
	fatal(err)
}

// fatal reports err in red on stderr and exits nonzero.
func fatal(err error) {
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// stageLex runs the lexical analyzer: source text in, token text form
// out.
func stageLex(input string, out io.Writer) error {
	lex := lexer.NewLexer(input)
	tokens, err := lex.ConsumeTokens()
	if err != nil {
		return err
	}
	for _, token := range tokens {
		if _, err := fmt.Fprintln(out, token.String()); err != nil {
			return err
		}
	}
	return nil
}

// stageParse runs the syntax analyzer: token text form in, AST listing
// out.
func stageParse(input string, out io.Writer) error {
	tokens, err := lexer.ReadTokens(strings.NewReader(input))
	if err != nil {
		return err
	}
	root, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return err
	}
	return parser.WriteListing(out, root)
}

// stageGen runs the code generator: AST listing in, bytecode listing
// out.
func stageGen(input string, out io.Writer) error {
	root, err := parser.ReadAST(strings.NewReader(input))
	if err != nil {
		return err
	}
	listing, err := codegen.GenerateListing(root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, listing)
	return err
}

// stageRun assembles a bytecode listing and interprets it on the VM.
func stageRun(input string, out io.Writer, stackSize int) error {
	program, err := code.Assemble(strings.NewReader(input))
	if err != nil {
		return err
	}
	return vm.NewWithStackSize(program, out, stackSize).Run()
}

// stageInterp reads an AST listing and executes it on the tree
// interpreter.
func stageInterp(input string, out io.Writer) error {
	root, err := parser.ReadAST(strings.NewReader(input))
	if err != nil {
		return err
	}
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(out)
	return evaluator.Eval(root)
}

// stageCompile composes lex, parse, and gen in-process: source text in,
// bytecode listing out.
func stageCompile(input string, out io.Writer) error {
	par, err := parser.NewParserFromSource(input)
	if err != nil {
		return err
	}
	root, err := par.Parse()
	if err != nil {
		return err
	}
	listing, err := codegen.GenerateListing(root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, listing)
	return err
}

// stageExec composes the whole pipeline in-process: source text in,
// program output out, executed on the VM.
func stageExec(input string, out io.Writer, stackSize int) error {
	par, err := parser.NewParserFromSource(input)
	if err != nil {
		return err
	}
	root, err := par.Parse()
	if err != nil {
		return err
	}
	program, err := codegen.Generate(root)
	if err != nil {
		return err
	}
	return vm.NewWithStackSize(program, out, stackSize).Run()
}

// showHelp displays usage information.
func showHelp() {
	fmt.Println("Usage: go-tiny [command] [input-file [output-file]]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  (none)     start the interactive REPL")
	fmt.Println("  lex        source text        -> token stream")
	fmt.Println("  parse      token stream       -> AST listing")
	fmt.Println("  gen        AST listing        -> bytecode listing")
	fmt.Println("  run        bytecode listing   -> program output (VM)")
	fmt.Println("  interp     AST listing        -> program output (tree interpreter)")
	fmt.Println("  compile    source text        -> bytecode listing")
	fmt.Println("  exec       source text        -> program output (VM)")
	fmt.Println()
	fmt.Println("With no files, a command reads stdin and writes stdout.")
}

// showVersion displays version information.
func showVersion() {
	fmt.Printf("go-tiny %s\n", VERSION)
}
