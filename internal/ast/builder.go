package ast

import (
	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/DjordjeVuckovic/truth-compare/internal/parser"
	"github.com/DjordjeVuckovic/truth-compare/internal/token"
)

// Build replays a postfix sequence into a tree. Only used for display.
func Build(rpn parser.RPN) (Node, error) {
	stack := make([]Node, 0, len(rpn))

	pop := func() Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for _, tok := range rpn {
		switch tok.Type {
		case token.VARIABLE:
			stack = append(stack, &Variable{Name: tok.Value})
		case token.CONSTANT:
			stack = append(stack, &Constant{Value: tok.Bool})
		case token.NOT:
			if len(stack) < 1 {
				return nil, apperr.NewMalformed("NOT is missing its operand")
			}
			stack = append(stack, &Not{Operand: pop()})
		case token.AND, token.OR, token.XOR:
			if len(stack) < 2 {
				return nil, apperr.NewMalformed("%s is missing an operand", tok.Type)
			}
			right := pop()
			left := pop()
			stack = append(stack, &Binary{Op: tok.Type, Left: left, Right: right})
		default:
			return nil, apperr.NewMalformed("unexpected %s in postfix sequence", tok.Type)
		}
	}

	switch len(stack) {
	case 0:
		return nil, apperr.NewMalformed("empty expression")
	case 1:
		return stack[0], nil
	default:
		return nil, apperr.NewMalformed("missing operator between %d sub-expressions", len(stack))
	}
}
