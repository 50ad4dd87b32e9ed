package ast

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/truth-compare/internal/token"
)

// Node is one of Variable, Constant, Not or Binary.
type Node interface {
	node()
	String() string
}

type Variable struct {
	Name string
}

type Constant struct {
	Value bool
}

type Not struct {
	Operand Node
}

// Binary joins two operands with Op, which is token.AND, token.OR or token.XOR.
type Binary struct {
	Op    token.Type
	Left  Node
	Right Node
}

func (*Variable) node() {}
func (*Constant) node() {}
func (*Not) node()      {}
func (*Binary) node()   {}

func (v *Variable) String() string { return v.Name }

func (c *Constant) String() string {
	if c.Value {
		return "1"
	}
	return "0"
}

func (n *Not) String() string { return "NOT(" + n.Operand.String() + ")" }

func (b *Binary) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Op, b.Left, b.Right)
}

// Equal reports structural equality of two trees.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.Value == y.Value
	case *Not:
		y, ok := b.(*Not)
		return ok && Equal(x.Operand, y.Operand)
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}

func getPadding(depth int) string {
	if depth == 0 {
		return ""
	}
	return strings.Repeat("│   ", depth-1) + "└── "
}

// Print renders the tree one node per line, children indented under their parent.
func Print(n Node) string {
	var b strings.Builder
	printNode(&b, n, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func printNode(b *strings.Builder, n Node, depth int) {
	b.WriteString(getPadding(depth))
	switch x := n.(type) {
	case *Variable:
		b.WriteString("VAR(" + x.Name + ")\n")
	case *Constant:
		b.WriteString("CONST(" + x.String() + ")\n")
	case *Not:
		b.WriteString("NOT\n")
		printNode(b, x.Operand, depth+1)
	case *Binary:
		b.WriteString(x.Op.String() + "\n")
		printNode(b, x.Left, depth+1)
		printNode(b, x.Right, depth+1)
	}
}
