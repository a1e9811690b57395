// Package jitcalc compiles a single arithmetic expression to native
// machine code and runs it, returning the computed value.
//
// The pipeline is strictly linear: text is lexed into tokens, parsed
// into a tree respecting the usual precedence and associativity,
// lowered to one LLVM IR function of no arguments, JIT compiled, and
// invoked once.
//
//	result, err := jitcalc.Eval("1 + 2 * 3") // 7
//
// All arithmetic is IEEE 754 double precision; in particular division
// by zero produces an infinity or NaN rather than an error. Failures
// to lex or parse are returned as *LexError or *ParseError.
package jitcalc

// Eval runs the whole pipeline over one expression. It builds and
// tears down its own Engine, so repeated calls are fully independent.
func Eval(input string, opts ...Option) (float64, error) {
	root, err := Parse(input)
	if err != nil {
		return 0, err
	}
	engine, err := NewEngine(opts...)
	if err != nil {
		return 0, err
	}
	defer engine.Close()
	code, err := engine.Compile(root)
	if err != nil {
		return 0, err
	}
	return code.Run(), nil
}
