package jitcalc

import (
	"fmt"

	"github.com/ajsnow/llvm"
)

// codegen lowers an expression tree into one LLVM IR function. Each
// Engine owns its own codegen, so independent pipelines share no
// module, builder or pass manager state.
type codegen struct {
	module   llvm.Module
	builder  llvm.Builder
	fpm      llvm.PassManager
	optimize bool
}

// addOptPasses installs the standard cleanup passes on the function
// pass manager.
func (c *codegen) addOptPasses() {
	c.fpm.AddInstructionCombiningPass()
	c.fpm.AddReassociatePass()
	c.fpm.AddGVNPass()
	c.fpm.AddCFGSimplificationPass()
	c.fpm.InitializeFunc()
}

// compile lowers root into a nullary function of double named "expr":
// a single entry block whose instruction sequence computes the
// expression's value and returns it.
func (c *codegen) compile(root Node) (llvm.Value, error) {
	fnType := llvm.FunctionType(llvm.DoubleType(), []llvm.Type{}, false)
	fn := llvm.AddFunction(c.module, "expr", fnType)
	block := llvm.AddBasicBlock(fn, "entry")
	c.builder.SetInsertPointAtEnd(block)

	retVal := root.codegen(c)
	c.builder.CreateRet(retVal)

	if err := llvm.VerifyFunction(fn, llvm.ReturnStatusAction); err != nil {
		fn.EraseFromParentAsFunction()
		var bad llvm.Value
		return bad, fmt.Errorf("jitcalc: generated function failed verification: %w", err)
	}

	if c.optimize {
		c.fpm.RunFunc(fn)
	}
	return fn, nil
}

// Lowering is post-order: operands first, then the instruction that
// combines them. It is total over everything the parser can build.

func (n *numberNode) codegen(c *codegen) llvm.Value {
	return llvm.ConstFloat(llvm.DoubleType(), n.val)
}

func (n *binaryNode) codegen(c *codegen) llvm.Value {
	l := n.left.codegen(c)
	r := n.right.codegen(c)

	switch n.op {
	case opAdd:
		return c.builder.CreateFAdd(l, r, "addtmp")
	case opSub:
		return c.builder.CreateFSub(l, r, "subtmp")
	case opMul:
		return c.builder.CreateFMul(l, r, "multmp")
	default:
		return c.builder.CreateFDiv(l, r, "divtmp")
	}
}

func (n *groupingNode) codegen(c *codegen) llvm.Value {
	return n.inner.codegen(c)
}
