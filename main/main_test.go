/*
File    : go-tiny/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// execTree runs src on the AST interpreter back end.
func execTree(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	// compile to the AST listing and interpret it, crossing the same
	// serialized seam the stage drivers use
	var ast bytes.Buffer
	if err := stageLex(src, &ast); err != nil {
		t.Fatalf("lex error: %v", err)
	}
	tokens := ast.String()
	ast.Reset()
	if err := stageParse(tokens, &ast); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := stageInterp(ast.String(), &out); err != nil {
		t.Fatalf("interp error: %v", err)
	}
	return out.String()
}

// execVM runs src through codegen and the virtual machine back end.
func execVM(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	if err := stageExec(src, &out, 1000); err != nil {
		t.Fatalf("exec error: %v", err)
	}
	return out.String()
}

// execPipeline runs src through all four stages over their text forms:
// lex -> parse -> gen -> run.
func execPipeline(t *testing.T, src string) string {
	t.Helper()
	stages := []func(string, *bytes.Buffer) error{
		func(in string, out *bytes.Buffer) error { return stageLex(in, out) },
		func(in string, out *bytes.Buffer) error { return stageParse(in, out) },
		func(in string, out *bytes.Buffer) error { return stageGen(in, out) },
		func(in string, out *bytes.Buffer) error { return stageRun(in, out, 1000) },
	}
	text := src
	for i, stage := range stages {
		var out bytes.Buffer
		if err := stage(text, &out); err != nil {
			t.Fatalf("pipeline stage %d error: %v", i, err)
		}
		text = out.String()
	}
	return text
}

// checkScenario runs one source on every back end and checks the
// outputs agree with each other and with the expectation.
func checkScenario(t *testing.T, name, src, expected string) {
	t.Helper()
	tree := execTree(t, src)
	machine := execVM(t, src)
	if tree != machine {
		t.Errorf("%s: interpreter and VM outputs differ:\ninterp: %q\nvm:     %q", name, tree, machine)
	}
	if machine != expected {
		t.Errorf("%s: expected %q, got %q", name, expected, machine)
	}
}

func TestScenario_HelloWorld(t *testing.T) {
	src := `print("Hello, World!\n");`
	checkScenario(t, "hello", src, "Hello, World!\n")
	if got := execPipeline(t, src); got != "Hello, World!\n" {
		t.Errorf("pipeline: expected %q, got %q", "Hello, World!\n", got)
	}
}

func TestScenario_PhoenixNumber(t *testing.T) {
	src := `phoenix_number = 142857; print(phoenix_number, "\n");`
	checkScenario(t, "phoenix", src, "142857\n")
}

func TestScenario_FizzBuzz(t *testing.T) {
	src := `
i = 1;
while (i <= 100) {
    if (!(i % 15))
        print("FizzBuzz");
    else if (!(i % 3))
        print("Fizz");
    else if (!(i % 5))
        print("Buzz");
    else
        print(i);
    print("\n");
    i = i + 1;
}
`
	var expected strings.Builder
	for i := 1; i <= 100; i++ {
		switch {
		case i%15 == 0:
			expected.WriteString("FizzBuzz\n")
		case i%3 == 0:
			expected.WriteString("Fizz\n")
		case i%5 == 0:
			expected.WriteString("Buzz\n")
		default:
			fmt.Fprintf(&expected, "%d\n", i)
		}
	}
	checkScenario(t, "fizzbuzz", src, expected.String())
	if got := execPipeline(t, src); got != expected.String() {
		t.Errorf("pipeline fizzbuzz output differs")
	}
}

func TestScenario_BottlesOfBeer(t *testing.T) {
	src := `
bottles = 99;
while (bottles > 0) {
    print(bottles, " bottles of beer on the wall\n");
    print(bottles, " bottles of beer\n");
    print("Take one down, pass it around\n");
    bottles = bottles - 1;
    print(bottles, " bottles of beer on the wall\n\n");
}
`
	var expected strings.Builder
	for bottles := 99; bottles > 0; bottles-- {
		fmt.Fprintf(&expected, "%d bottles of beer on the wall\n", bottles)
		fmt.Fprintf(&expected, "%d bottles of beer\n", bottles)
		expected.WriteString("Take one down, pass it around\n")
		fmt.Fprintf(&expected, "%d bottles of beer on the wall\n\n", bottles-1)
	}
	checkScenario(t, "bottles", src, expected.String())

	out := execVM(t, src)
	head := "99 bottles of beer on the wall\n99 bottles of beer\nTake one down, pass it around\n98 bottles of beer on the wall\n\n"
	tail := "1 bottles of beer\nTake one down, pass it around\n0 bottles of beer on the wall\n\n"
	if !strings.HasPrefix(out, head) {
		t.Errorf("bottles output does not start with the expected verse")
	}
	if !strings.HasSuffix(out, tail) {
		t.Errorf("bottles output does not end with the expected verse")
	}
}

func TestScenario_Primes(t *testing.T) {
	src := `
/*
 Simple prime number generator
 */
count = 1;
n = 1;
limit = 100;
while (n < limit) {
    k = 3;
    p = 1;
    n = n + 2;
    while ((k*k <= n) && (p)) {
        p = n / k * k != n;
        k = k + 2;
    }
    if (p) {
        print(n, " is prime\n");
        count = count + 1;
    }
}
print("Total primes found: ", count, "\n");
`
	var expected strings.Builder
	count := 1
	n := 1
	for n < 100 {
		k := 3
		p := 1
		n += 2
		for k*k <= n && p != 0 {
			if n/k*k != n {
				p = 1
			} else {
				p = 0
			}
			k += 2
		}
		if p != 0 {
			fmt.Fprintf(&expected, "%d is prime\n", n)
			count++
		}
	}
	fmt.Fprintf(&expected, "Total primes found: %d\n", count)

	if count != 26 {
		t.Fatalf("reference generator is wrong: count = %d", count)
	}
	checkScenario(t, "primes", src, expected.String())

	out := execVM(t, src)
	if !strings.HasPrefix(out, "3 is prime\n5 is prime\n7 is prime\n") {
		t.Errorf("primes output does not start with the odd primes")
	}
	if !strings.HasSuffix(out, "101 is prime\nTotal primes found: 26\n") {
		t.Errorf("primes output does not end with the total")
	}
}

func TestScenario_EuclidGCD(t *testing.T) {
	src := `
/* Compute the gcd of -1071 and 1029: 21 */
a = -1071;
b = 1029;
while (b != 0) {
    new_a = b;
    b = a % b;
    a = new_a;
}
print(a);
`
	checkScenario(t, "gcd", src, "21")
}

// TestEmptyInput verifies the graceful path end to end: an empty
// source parses to an empty Sequence, compiles to a lone halt, and
// runs producing no output.
func TestEmptyInput(t *testing.T) {
	var listing bytes.Buffer
	if err := stageCompile("", &listing); err != nil {
		t.Fatalf("compile error: %v", err)
	}
	if listing.String() != "Datasize: 0 Strings: 0\n0 halt\n" {
		t.Errorf("unexpected listing: %q", listing.String())
	}

	var out bytes.Buffer
	if err := stageRun(listing.String(), &out, 1000); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out.String() != "" {
		t.Errorf("expected no output, got %q", out.String())
	}
}
