package parser

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/DjordjeVuckovic/truth-compare/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, input string) RPN {
	t.Helper()
	tokens, err := token.NewBoolTokenizer().Tokenize(token.Normalize(input))
	require.NoError(t, err)
	rpn, err := ToRPN(tokens)
	require.NoError(t, err)
	return rpn
}

func TestToRPN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single variable", input: "A", expected: "A"},
		{name: "constant", input: "1", expected: "1"},
		{name: "AND binds tighter than OR", input: "A+B*C", expected: "A B C AND OR"},
		{name: "parentheses override", input: "(A+B)*C", expected: "A B OR C AND"},
		{name: "XOR between AND and OR", input: "A+B^C*D", expected: "A B C D AND XOR OR"},
		{name: "left associative OR", input: "A+B+C", expected: "A B OR C OR"},
		{name: "left associative XOR", input: "A^B^C", expected: "A B XOR C XOR"},
		{name: "prefix not", input: "!A*B", expected: "A NOT B AND"},
		{name: "double prefix not", input: "!!A", expected: "A NOT NOT"},
		{name: "prefix not on group", input: "!(A+B)", expected: "A B OR NOT"},
		{name: "postfix not", input: "A'", expected: "A NOT"},
		{name: "triple postfix not", input: "A'''", expected: "A NOT NOT NOT"},
		{name: "postfix not binds before AND", input: "A*B'", expected: "A B NOT AND"},
		{name: "postfix not on group", input: "(A+B')'", expected: "A B NOT OR NOT"},
		{name: "prefix and postfix mixed", input: "!A'", expected: "A NOT NOT"},
		{name: "implicit AND", input: "AB+C", expected: "A B AND C OR"},
		{name: "implicit AND before prefix not", input: "A!B", expected: "A B NOT AND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compile(t, tt.input).String())
		})
	}
}

func TestToRPN_ImplicitAndMatchesExplicit(t *testing.T) {
	pairs := [][2]string{
		{"AB", "A*B"},
		{"(A)(B)", "(A)*(B)"},
		{"A!B", "A*!B"},
		{"A'B", "A'*B"},
	}
	for _, p := range pairs {
		t.Run(p[0], func(t *testing.T) {
			assert.True(t, compile(t, p[0]).Equal(compile(t, p[1])))
		})
	}
}

func TestToRPN_Idempotent(t *testing.T) {
	first := compile(t, "(A+B')'^C1")
	second := compile(t, "(A+B')'^C1")
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.String(), second.String())
}

func TestToRPN_MismatchedParentheses(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unclosed", input: "(A+B"},
		{name: "unopened", input: "A+B)"},
		{name: "nested unclosed", input: "((A)"},
		{name: "close before open", input: ")A("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := token.NewBoolTokenizer().Tokenize(tt.input)
			require.NoError(t, err)

			_, err = ToRPN(tokens)
			var pe *apperr.MismatchedParenthesesError
			assert.True(t, errors.As(err, &pe), "expected mismatched parentheses, got %v", err)
		})
	}
}

func TestRPN_Variables(t *testing.T) {
	rpn := compile(t, "B+A*B+C")
	assert.Equal(t, []string{"B", "A", "C"}, rpn.Variables())
}
