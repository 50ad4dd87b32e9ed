package parser

import (
	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/DjordjeVuckovic/truth-compare/internal/token"
)

// Precedence returns the binding strength of an operator, higher binds tighter.
func Precedence(t token.Type) int {
	switch t {
	case token.NOT, token.POSTFIX_NOT:
		return 4
	case token.AND:
		return 3
	case token.XOR:
		return 2
	case token.OR:
		return 1
	default:
		return 0
	}
}

func leftAssociative(t token.Type) bool {
	return t.IsBinary()
}

// ToRPN converts an infix token stream (implicit ANDs already inserted)
// into postfix order using the shunting-yard algorithm.
// Arity is not checked here; the evaluator and AST builder reject malformed sequences.
func ToRPN(tokens []token.Token) (RPN, error) {
	out := make(RPN, 0, len(tokens))
	var ops []token.Token

	for _, tok := range tokens {
		switch tok.Type {
		case token.VARIABLE, token.CONSTANT:
			out = append(out, tok)
		case token.POSTFIX_NOT:
			// applies to the operand already shunted before it
			out = append(out, token.Token{Type: token.NOT, Value: tok.Value, Pos: tok.Pos})
		case token.AND, token.OR, token.XOR, token.NOT:
			prec := Precedence(tok.Type)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if !top.Type.IsOperator() {
					break
				}
				topPrec := Precedence(top.Type)
				if leftAssociative(tok.Type) && topPrec < prec {
					break
				}
				if !leftAssociative(tok.Type) && topPrec <= prec {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case token.LPAREN:
			ops = append(ops, tok)
		case token.RPAREN:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Type == token.LPAREN {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, &apperr.MismatchedParenthesesError{Pos: tok.Pos}
			}
		case token.EOF:
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Type == token.LPAREN {
			return nil, &apperr.MismatchedParenthesesError{Pos: top.Pos}
		}
		out = append(out, top)
	}

	return out, nil
}
