package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/DjordjeVuckovic/truth-compare/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	expr, err := Compile("  B’ +  A10 A2 ")
	require.NoError(t, err)

	assert.Equal(t, "  B’ +  A10 A2 ", expr.Text)
	assert.Equal(t, "B NOT A10 A2 AND OR", expr.RPN.String())
	assert.Equal(t, []string{"A2", "A10", "B"}, expr.Variables)
	assert.Equal(t, `\overline{B} + A10 \cdot A2`, expr.Markup())
}

func TestCompile_Idempotent(t *testing.T) {
	a, err := Compile("(A+B')'C")
	require.NoError(t, err)
	b, err := Compile("(A+B')'C")
	require.NoError(t, err)

	assert.True(t, a.RPN.Equal(b.RPN))
	assert.True(t, ast.Equal(a.AST, b.AST))
	assert.Equal(t, a.Variables, b.Variables)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target any
	}{
		{name: "syntax", input: "A & B", target: new(*apperr.SyntaxError)},
		{name: "unclosed paren", input: "(A+B", target: new(*apperr.MismatchedParenthesesError)},
		{name: "unopened paren", input: "A+B)", target: new(*apperr.MismatchedParenthesesError)},
		{name: "dangling operator", input: "A+", target: new(*apperr.MalformedExpressionError)},
		{name: "leading operator", input: "*A", target: new(*apperr.MalformedExpressionError)},
		{name: "empty", input: "   ", target: new(*apperr.MalformedExpressionError)},
		{name: "empty parens", input: "()", target: new(*apperr.MalformedExpressionError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.input)
			require.Error(t, err)
			assert.True(t, errors.As(err, tt.target), "unexpected error %v", err)
		})
	}
}

func TestCompile_SyntaxErrorPosition(t *testing.T) {
	_, err := Compile("A & B")

	var se *apperr.SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Pos)
	assert.Equal(t, '&', se.Char)
}

func TestCompare(t *testing.T) {
	t.Run("De Morgan pair agrees everywhere", func(t *testing.T) {
		res := Compare("(A+B')'", "A'*B", Options{})
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"A", "B"}, res.Table.Variables)
		assert.Len(t, res.Rows(false), 4)
		assert.Empty(t, res.Rows(true))
		assert.Equal(t, `\overline{A + \overline{B}}`, res.LeftMarkup)
		assert.Equal(t, `\overline{A} \cdot B`, res.RightMarkup)
	})

	t.Run("variables are unioned", func(t *testing.T) {
		res := Compare("A", "B + C", Options{})
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"A", "B", "C"}, res.Table.Variables)
		assert.Len(t, res.Table.Rows, 8)
	})

	t.Run("constants produce one differing row", func(t *testing.T) {
		res := Compare("1", "0", Options{})
		require.NoError(t, res.Err)
		assert.Empty(t, res.Table.Variables)
		require.Len(t, res.Rows(false), 1)
		assert.Len(t, res.Rows(true), 1)
	})

	t.Run("precedence matches explicit grouping", func(t *testing.T) {
		res := Compare("A+B*C", "A+(B*C)", Options{})
		require.NoError(t, res.Err)
		assert.True(t, res.Table.Equivalent())
	})

	t.Run("failure in expression 2 aborts the table", func(t *testing.T) {
		res := Compare("A", "(A+B", Options{})
		require.Error(t, res.Err)
		assert.Nil(t, res.Table)
		assert.Nil(t, res.Rows(false))
		assert.True(t, strings.HasPrefix(res.Message(), "expression 2: "))

		var pe *apperr.MismatchedParenthesesError
		assert.True(t, errors.As(res.Err, &pe))
	})

	t.Run("failure in expression 1 wins", func(t *testing.T) {
		res := Compare("A & B", "(A+B", Options{})
		require.Error(t, res.Err)
		assert.True(t, strings.HasPrefix(res.Message(), "expression 1: "))
	})

	t.Run("variable cap", func(t *testing.T) {
		res := Compare("ABCD", "A", Options{MaxVariables: 3})
		var te *apperr.TooManyVariablesError
		require.True(t, errors.As(res.Err, &te))
		assert.Nil(t, res.Table)
	})
}

// Rendering to markup and compiling that rendering back must keep every
// evaluation result, so minimal parenthesization never changes meaning.
func TestMarkup_RoundTrip(t *testing.T) {
	inputs := []string{
		"A+B*C",
		"(A+B)*C",
		"A^(B+C)",
		"(A^B)^C",
		"A^(B^C)",
		"!(A*B)+C'",
		"(A+B')'",
		"A(B+C)'^1",
	}

	toInfix := strings.NewReplacer(
		`\left(`, "(",
		`\right)`, ")",
		`\cdot`, "*",
		`\oplus`, "^",
		`\overline{`, "!(",
		"}", ")",
	)

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			expr, err := Compile(in)
			require.NoError(t, err)

			rendered := toInfix.Replace(expr.Markup())
			res := Compare(in, rendered, Options{})
			require.NoError(t, res.Err, "rendered %q", rendered)
			assert.True(t, res.Table.Equivalent(), "rendered %q", rendered)
		})
	}
}
