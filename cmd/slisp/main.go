// Command slisp evaluates programs written in a small Lisp dialect.
//
//	slisp [flags] [file ...]
//
// Source is read from the named files, from the -e flag, or from standard
// input when neither is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	lisp "github.com/xiam/s-lisp"
	"github.com/xiam/s-lisp/ast"
	"github.com/xiam/s-lisp/parser"
)

var (
	flagExpr     = flag.String("e", "", "evaluate the given expression")
	flagAST      = flag.Bool("ast", false, "print the parsed tree instead of evaluating it")
	flagContinue = flag.Bool("continue", false, "keep evaluating top-level forms after an error")
	flagVerbose  = flag.Bool("v", false, "trace evaluation to stderr")
	flagEnv      = flag.Bool("env", false, "print the root bindings after evaluation")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("slisp: ")

	flag.Parse()

	opts := []lisp.Option{
		lisp.WithOutput(os.Stdout),
	}
	if *flagVerbose {
		opts = append(opts, lisp.WithLogger(log.New(os.Stderr, "slisp: ", 0)))
	}
	in := lisp.New(opts...)

	sources, err := readSources()
	if err != nil {
		log.Fatal(err)
	}

	failed := false
	for _, src := range sources {
		if !run(os.Stdout, in, src) {
			failed = true
			if !*flagContinue {
				break
			}
		}
	}

	if *flagEnv {
		for _, name := range in.Environment().Symbols() {
			value, _ := in.Environment().Lookup(name)
			fmt.Printf("%s: %s\n", name, ast.EncodeValue(value))
		}
	}

	if failed {
		os.Exit(1)
	}
}

func readSources() ([]string, error) {
	if *flagExpr != "" {
		return []string{*flagExpr}, nil
	}

	if flag.NArg() == 0 {
		buf, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []string{string(buf)}, nil
	}

	sources := make([]string, 0, flag.NArg())
	for _, name := range flag.Args() {
		buf, err := ioutil.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
		sources = append(sources, string(buf))
	}
	return sources, nil
}

// run evaluates src and prints the value of every top-level form that is
// not nil. It returns false if any form failed.
func run(w io.Writer, in *lisp.Interpreter, src string) bool {
	root, err := parser.Parse([]byte(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}

	if *flagAST {
		ast.Fprint(w, root)
		return true
	}

	ok := true
	in.EvalEach(root, func(form *ast.Node, value *ast.Node, err error) bool {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			ok = false
			return *flagContinue
		}
		if !value.Is(ast.NodeTypeNil) {
			fmt.Fprintln(w, lisp.Display(value))
		}
		return true
	})
	return ok
}
