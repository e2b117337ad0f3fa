/*
Parser builds the canonical LR(1) tables for a grammar and recognizes
sentences against them.

It reads a grammar file in the syntax described by the engine's grammar
package, builds the canonical collection of LR(1) states and the
corresponding ACTION/GOTO tables, and then either prints the tables or
drives the recognizer over a stream of terminal tokens read from stdin.

Usage:

	parser [flags] GRAMMAR_FILE

The flags are:

	-v, --version
		Print the current version and exit.

	-t, --terminals FILE
		Load the terminal registry from the given TOML file instead of the
		built-in demo registry.

	-d, --direct
		Force reading tokens directly from stdin instead of using GNU
		readline based routines, even if launched in a tty.

	-a, --action TABLE
		Print the ACTION/GOTO table and exit without recognizing anything.
		TABLE is ignored; its presence alone selects this mode.

	    --trace
		Print a line to stderr for every shift, reduce, goto, and
		accept/reject decision made while recognizing.

Once the tables are built, the recognizer reads whitespace-separated
terminal names from stdin until it sees the registry's END sentinel or
input is exhausted, and reports whether the token sequence is accepted.
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/ccrownhill/parsing-from-scratch/internal/automaton"
	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
	"github.com/ccrownhill/parsing-from-scratch/internal/input"
	"github.com/ccrownhill/parsing-from-scratch/internal/parse"
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
	"github.com/ccrownhill/parsing-from-scratch/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution: the input token
	// sequence was accepted by the tables, or the requested table/version
	// dump succeeded.
	ExitSuccess = iota

	// ExitReject indicates the tables were built successfully but the input
	// token sequence was not a sentence of the grammar.
	ExitReject

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue loading the registry, grammar, or building the tables.
	ExitInitError
)

var (
	returnCode int = ExitSuccess

	flagVersion   *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	terminalsFile *string = pflag.StringP("terminals", "t", "", "Load the terminal registry from the given TOML file")
	forceDirect   *bool   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	dumpTable     *string = pflag.StringP("action", "a", "", "Print the ACTION/GOTO table and exit instead of recognizing input")
	traceEnabled  *bool   = pflag.Bool("trace", false, "Print a shift/reduce/goto/accept trace to stderr")
)

// demoTerminals is the built-in registry used when no --terminals file is
// given: a small arithmetic-expression alphabet, enough to exercise the
// grammar and trace examples in the engine's documentation without
// requiring a TOML file on disk.
var demoTerminals = []string{"PLUS", "STAR", "LPAREN", "RPAREN", "NUMBER"}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: missing required GRAMMAR_FILE argument")
		returnCode = ExitInitError
		return
	}
	grammarPath := pflag.Arg(0)

	reg, err := loadRegistry(*terminalsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	gf, err := os.Open(grammarPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: open grammar file: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer gf.Close()

	g, err := grammar.Load(gf, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	first := grammar.Build(g, reg)
	coll := automaton.Build(g, first)
	table, err := parse.Build(coll, g, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if *dumpTable != "" {
		fmt.Println(table.String(g, reg.Terminals()))
		return
	}

	rec := &parse.Recognizer{Table: table}
	if *traceEnabled {
		rec.Trace = func(line string) { log.Println(line) }
	}

	src, err := input.Select(reg, *forceDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: set up token source: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer src.Close()

	if rec.Recognize(g.Start(), src) {
		fmt.Println("accept")
	} else {
		fmt.Println("reject")
		returnCode = ExitReject
	}
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.New(demoTerminals...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terminal registry: %w", err)
	}
	defer f.Close()
	return registry.Load(f)
}
