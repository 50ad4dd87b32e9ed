// Package markup renders expression trees as LaTeX math for an external
// typesetting collaborator.
package markup

import (
	"github.com/DjordjeVuckovic/truth-compare/internal/ast"
	"github.com/DjordjeVuckovic/truth-compare/internal/parser"
	"github.com/DjordjeVuckovic/truth-compare/internal/token"
)

var symbols = map[token.Type]string{
	token.AND: `\cdot`,
	token.OR:  `+`,
	token.XOR: `\oplus`,
}

// LaTeX renders n with the minimal set of parentheses that keeps its
// evaluation order.
func LaTeX(n ast.Node) string {
	return render(n, 0)
}

func render(n ast.Node, parent int) string {
	switch x := n.(type) {
	case *ast.Variable:
		return x.Name
	case *ast.Constant:
		return x.String()
	case *ast.Not:
		return `\overline{` + render(x.Operand, 0) + `}`
	case *ast.Binary:
		prec := parser.Precedence(x.Op)
		// the right operand of a left-associative chain needs parentheses at equal precedence
		out := render(x.Left, prec) + " " + symbols[x.Op] + " " + render(x.Right, prec+1)
		if prec < parent {
			return `\left(` + out + `\right)`
		}
		return out
	}
	return ""
}
