/*
File    : go-tiny/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Tiny tree
interpreter. The REPL provides an interactive environment where users
can enter Tiny statements, see their output immediately, and keep
variable bindings alive between inputs. Input lines with unbalanced
braces accumulate until the braces close, so multi-line while/if
bodies work naturally.

The REPL uses the readline library for line editing and history, and
colors its feedback so output, errors, and banner text are easy to
tell apart.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-tiny/eval"
	"github.com/akashmaji946/go-tiny/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl represents one interactive session's configuration.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the toolchain
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
	Colors  bool   // Whether to color the output
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    line,
		License: license,
		Prompt:  prompt,
		Colors:  true,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Tiny!")
	r.printHelp(writer)
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// printHelp displays the usage tips and the REPL commands.
func (r *Repl) printHelp(writer io.Writer) {
	cyanColor.Fprintf(writer, "%s\n", "Type statements and press enter; bindings persist")
	cyanColor.Fprintf(writer, "%s\n", "Lines with open braces continue until they close")
	cyanColor.Fprintf(writer, "%s\n", "Type '.help' to show this message")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
}

// Start begins the REPL main loop. It reads lines through readline,
// accumulates them until braces balance, and executes each complete
// input against a persistent evaluator. The loop ends on '.exit' or
// EOF (Ctrl+D).
func (r *Repl) Start(writer io.Writer) {
	if !r.Colors {
		color.NoColor = true
	}

	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	var pending strings.Builder
	depth := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" && pending.Len() == 0 {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == ".help" {
			r.printHelp(writer)
			continue
		}

		rl.SaveHistory(line)
		pending.WriteString(line)
		pending.WriteByte('\n')
		depth += braceDelta(line)

		if depth > 0 {
			// keep reading until the braces close
			rl.SetPrompt("  ... ")
			continue
		}

		input := pending.String()
		pending.Reset()
		depth = 0
		rl.SetPrompt(r.Prompt)

		r.execute(writer, input, evaluator)
	}
}

// execute parses and evaluates one complete input, reporting errors in
// red without ending the session.
func (r *Repl) execute(writer io.Writer, input string, evaluator *eval.Evaluator) {
	par, err := parser.NewParserFromSource(input)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	root, err := par.Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if err := evaluator.Eval(root); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}

// braceDelta counts the brace nesting contributed by a line, ignoring
// braces inside string and character literals.
func braceDelta(line string) int {
	depth := 0
	inString := false
	inChar := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case inChar:
			if c == '\\' {
				i++
			} else if c == '\'' {
				inChar = false
			}
		case c == '"':
			inString = true
		case c == '\'':
			inChar = true
		case c == '{':
			depth++
		case c == '}':
			depth--
		}
	}
	return depth
}
