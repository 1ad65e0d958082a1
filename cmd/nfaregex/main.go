/*
Nfaregex compiles a regular expression to an NFA and reports whether it
matches an input string in full.

Usage:

	nfaregex [flags] PATTERN INPUT

The flags are:

	-s, --show-ast
		Print the pretty-printed AST (regex.String) alongside the result.

	-v, --verbose
		Print the compiled NFA's state and rule counts.

PATTERN is matched against the whole of INPUT: this is an exact-match
engine, not a search — there is no leftmost-longest or partial-match
mode. Supported syntax is literal characters, ".", "[...]"/"[^...]"
character sets, "|", implicit concatenation, "*", "+", "?", and "(...)"
for grouping. Anchors, bounded repetition, and backreferences are not
supported and are rejected as parse errors.

Nfaregex exits 0 if PATTERN matches INPUT, 1 if it does not, and 2 if
PATTERN fails to parse.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/yodalee/nfaregex/internal/parser"
	"github.com/yodalee/nfaregex/regex"
)

const (
	// ExitMatch indicates the pattern matched the input.
	ExitMatch = 0
	// ExitNoMatch indicates the pattern did not match the input.
	ExitNoMatch = 1
	// ExitParseError indicates the pattern failed to parse.
	ExitParseError = 2
	// ExitUsageError indicates the command was invoked incorrectly.
	ExitUsageError = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("nfaregex", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	showAST := fs.BoolP("show-ast", "s", false, "print the pretty-printed AST alongside the result")
	verbose := fs.BoolP("verbose", "v", false, "print the compiled NFA's state and rule counts")
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}

	positional := fs.Args()
	if len(positional) != 2 {
		fmt.Fprintf(stderr, "usage: nfaregex [flags] PATTERN INPUT\n")
		return ExitUsageError
	}
	pattern, input := positional[0], positional[1]

	ast, err := parser.Parse(pattern)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err.Error())
		return ExitParseError
	}

	if *showAST {
		fmt.Fprintf(stdout, "ast: %s\n", regex.String(ast))
	}
	if *verbose {
		design := regex.ToNFA(ast)
		fmt.Fprintf(stdout, "nfa: %d states, %d rules\n", design.StateCount(), design.RuleCount())
	}

	if regex.Matches(ast, input) {
		color.New(color.FgGreen).Fprintf(stdout, "MATCH")
		fmt.Fprintf(stdout, ": %q matches %q\n", pattern, input)
		return ExitMatch
	}

	color.New(color.FgRed).Fprintf(stdout, "NO MATCH")
	fmt.Fprintf(stdout, ": %q does not match %q\n", pattern, input)
	return ExitNoMatch
}
