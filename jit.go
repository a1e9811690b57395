package jitcalc

import (
	"fmt"

	"github.com/ajsnow/llvm"
)

// Engine owns the LLVM module, builder and execution engine backing
// one compiled expression. Engines are single-use and single-threaded:
// compile one expression, run it, Close. Two expressions need two
// Engines.
type Engine struct {
	cg     codegen
	ee     llvm.ExecutionEngine
	closed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithOptimization adds the standard function passes (instruction
// combining, reassociation, GVN, CFG simplification) before execution.
func WithOptimization() Option {
	return func(e *Engine) {
		e.cg.optimize = true
	}
}

// NewEngine creates an Engine with a fresh module and JIT execution
// engine. The caller must Close it on every exit path.
func NewEngine(opts ...Option) (*Engine, error) {
	module := llvm.NewModule("jitcalc")
	ee, err := llvm.NewExecutionEngine(module)
	if err != nil {
		module.Dispose()
		return nil, fmt.Errorf("jitcalc: creating execution engine: %w", err)
	}
	e := &Engine{
		cg: codegen{
			module:  module,
			builder: llvm.NewBuilder(),
			fpm:     llvm.NewFunctionPassManagerForModule(module),
		},
		ee: ee,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cg.optimize {
		e.cg.addOptPasses()
	}
	return e, nil
}

// Compile lowers the expression tree to native code and returns the
// callable result. The returned Compiled is only valid until Close.
func (e *Engine) Compile(root Node) (*Compiled, error) {
	fn, err := e.cg.compile(root)
	if err != nil {
		return nil, err
	}
	return &Compiled{engine: e, fn: fn}, nil
}

// Close releases the native code and module state behind the Engine.
// It is idempotent. Compiled handles from this Engine must not be run
// afterwards.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.cg.fpm.Dispose()
	e.cg.builder.Dispose()
	e.ee.Dispose() // the execution engine owns the module
}

// Compiled is the native entry point for one compiled expression.
type Compiled struct {
	engine *Engine
	fn     llvm.Value
}

// Run invokes the compiled expression and returns its value. Division
// follows IEEE 754 double semantics: dividing a nonzero value by zero
// yields an infinity and 0/0 yields NaN; neither is an error.
func (c *Compiled) Run() float64 {
	ret := c.engine.ee.RunFunction(c.fn, []llvm.GenericValue{})
	return ret.Float(llvm.DoubleType())
}

// Dump prints the function's LLVM IR to stderr.
func (c *Compiled) Dump() {
	c.fn.Dump()
}
