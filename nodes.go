package jitcalc

import (
	"strconv"

	"github.com/ajsnow/llvm"
)

// AST Nodes

// Node is one node of the abstract syntax tree. The parser produces
// exactly one root Node per expression; code generation consumes it.
type Node interface {
	Kind() NodeKind
	Position() Pos
	String() string
	codegen(c *codegen) llvm.Value
}

// NodeKind identifies the type of a Node.
type NodeKind int

// Kind returns itself, embedding into Nodes.
func (k NodeKind) Kind() NodeKind {
	return k
}

const (
	NodeNumber NodeKind = iota
	NodeBinary
	NodeGrouping
)

// Pos defines a byte offset from the beginning of the input text.
type Pos int

func (p Pos) Position() Pos {
	return p
}

// opKind identifies a binary arithmetic operator.
type opKind int

const (
	opAdd opKind = iota
	opSub
	opMul
	opDiv
)

func (o opKind) String() string {
	switch o {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	default:
		return "?"
	}
}

// tokenOps maps operator tokens to the operator they denote.
var tokenOps = map[TokenType]opKind{
	TokenPlus:  opAdd,
	TokenMinus: opSub,
	TokenStar:  opMul,
	TokenSlash: opDiv,
}

type numberNode struct {
	NodeKind
	Pos

	val float64
}

type binaryNode struct {
	NodeKind
	Pos

	op    opKind
	left  Node
	right Node
}

// groupingNode is a parenthesized subexpression. It is purely
// syntactic and contributes nothing of its own to code generation.
type groupingNode struct {
	NodeKind
	Pos

	inner Node
}

// String renders the node with every binary operation fully
// parenthesized, so precedence and associativity are visible.
func (n *numberNode) String() string {
	return strconv.FormatFloat(n.val, 'g', -1, 64)
}

func (n *binaryNode) String() string {
	return "(" + n.left.String() + " " + n.op.String() + " " + n.right.String() + ")"
}

func (n *groupingNode) String() string {
	return n.inner.String()
}
