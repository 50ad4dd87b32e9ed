package eval

import (
	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/DjordjeVuckovic/truth-compare/internal/parser"
	"github.com/DjordjeVuckovic/truth-compare/internal/token"
)

// Assignment maps each variable in scope to its value.
type Assignment map[string]bool

// Program evaluates one postfix sequence repeatedly, reusing its value stack
// between runs. A Program is not safe for concurrent use.
type Program struct {
	code  parser.RPN
	stack []bool
}

func NewProgram(code parser.RPN) *Program {
	return &Program{code: code, stack: make([]bool, 0, len(code))}
}

// Evaluate runs rpn once against env.
func Evaluate(rpn parser.RPN, env Assignment) (bool, error) {
	return NewProgram(rpn).Run(env)
}

func (p *Program) Run(env Assignment) (bool, error) {
	stack := p.stack[:0]

	for _, tok := range p.code {
		switch tok.Type {
		case token.VARIABLE:
			v, ok := env[tok.Value]
			if !ok {
				return false, &apperr.UndefinedVariableError{Name: tok.Value}
			}
			stack = append(stack, v)
		case token.CONSTANT:
			stack = append(stack, tok.Bool)
		case token.NOT:
			if len(stack) < 1 {
				return false, apperr.NewMalformed("NOT is missing its operand")
			}
			stack[len(stack)-1] = !stack[len(stack)-1]
		case token.AND, token.OR, token.XOR:
			if len(stack) < 2 {
				return false, apperr.NewMalformed("%s is missing an operand", tok.Type)
			}
			lhs, rhs := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = apply(tok.Type, lhs, rhs)
		default:
			return false, apperr.NewMalformed("unexpected %s in postfix sequence", tok.Type)
		}
	}

	p.stack = stack
	if len(stack) != 1 {
		if len(stack) == 0 {
			return false, apperr.NewMalformed("empty expression")
		}
		return false, apperr.NewMalformed("missing operator between %d sub-expressions", len(stack))
	}
	return stack[0], nil
}

func apply(op token.Type, lhs, rhs bool) bool {
	switch op {
	case token.AND:
		return lhs && rhs
	case token.OR:
		return lhs || rhs
	default:
		return lhs != rhs
	}
}
