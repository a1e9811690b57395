// Command jitcalc compiles one arithmetic expression to native code,
// runs it, and prints the result as "expression = value".
//
// The expression is taken from the argument list; with no arguments a
// built-in sample expression is used.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ajsnow/jitcalc"
)

var (
	optimized   = flag.Bool("opt", false, "add some optimization passes")
	printTokens = flag.Bool("tok", false, "print tokens")
	printAst    = flag.Bool("ast", false, "print abstract syntax tree")
	printLLVMIR = flag.Bool("llvm", false, "print LLVM generated code")
)

const defaultExpr = "1 + 2 * - ( 3 - 4 / ( - 5 ) )"

func main() {
	flag.Parse()
	input := defaultExpr
	if args := flag.Args(); len(args) > 0 {
		input = strings.Join(args, " ")
	}
	if err := run(input); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(input string) error {
	if *printTokens {
		for tok := range jitcalc.Lex(input) {
			spew.Fdump(os.Stderr, tok)
		}
	}

	root, err := jitcalc.Parse(input)
	if err != nil {
		return err
	}
	if *printAst {
		spew.Fdump(os.Stderr, root)
	}

	var opts []jitcalc.Option
	if *optimized {
		opts = append(opts, jitcalc.WithOptimization())
	}
	engine, err := jitcalc.NewEngine(opts...)
	if err != nil {
		return err
	}
	defer engine.Close()

	code, err := engine.Compile(root)
	if err != nil {
		return err
	}
	if *printLLVMIR {
		code.Dump()
	}
	fmt.Printf("%s = %v\n", root, code.Run())
	return nil
}
