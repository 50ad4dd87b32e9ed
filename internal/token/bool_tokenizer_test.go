package token

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(tokens []Token) []Type {
	out := make([]Type, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestBoolTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Type
	}{
		{
			name:     "explicit operators",
			input:    "A + B * C ^ D",
			expected: []Type{VARIABLE, OR, VARIABLE, AND, VARIABLE, XOR, VARIABLE},
		},
		{
			name:     "operator aliases",
			input:    "A|B.C·D",
			expected: []Type{VARIABLE, OR, VARIABLE, AND, VARIABLE, AND, VARIABLE},
		},
		{
			name:     "prefix not",
			input:    "!A + ~B",
			expected: []Type{NOT, VARIABLE, OR, NOT, VARIABLE},
		},
		{
			name:     "postfix markers are separate tokens",
			input:    "A''",
			expected: []Type{VARIABLE, POSTFIX_NOT, POSTFIX_NOT},
		},
		{
			name:     "constants",
			input:    "1 + 0",
			expected: []Type{CONSTANT, OR, CONSTANT},
		},
		{
			name:     "implicit AND between variables",
			input:    "AB",
			expected: []Type{VARIABLE, AND, VARIABLE},
		},
		{
			name:     "implicit AND with space",
			input:    "A B",
			expected: []Type{VARIABLE, AND, VARIABLE},
		},
		{
			name:     "implicit AND between groups",
			input:    "(A)(B)",
			expected: []Type{LPAREN, VARIABLE, RPAREN, AND, LPAREN, VARIABLE, RPAREN},
		},
		{
			name:     "implicit AND before prefix not",
			input:    "A!B",
			expected: []Type{VARIABLE, AND, NOT, VARIABLE},
		},
		{
			name:     "implicit AND after postfix not",
			input:    "A'B",
			expected: []Type{VARIABLE, POSTFIX_NOT, AND, VARIABLE},
		},
		{
			name:     "no implicit AND before postfix not or closing paren",
			input:    "(A)'",
			expected: []Type{LPAREN, VARIABLE, RPAREN, POSTFIX_NOT},
		},
		{
			name:     "constant next to variable",
			input:    "1A",
			expected: []Type{CONSTANT, AND, VARIABLE},
		},
		{
			name:     "empty",
			input:    "",
			expected: []Type{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewBoolTokenizer().Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, types(tokens))
		})
	}
}

func TestBoolTokenizer_VariableNames(t *testing.T) {
	tokens, err := NewBoolTokenizer().Tokenize("A10 a x_2y")
	require.NoError(t, err)

	var names []string
	for _, tok := range tokens {
		if tok.Type == VARIABLE {
			names = append(names, tok.Value)
		}
	}
	assert.Equal(t, []string{"A10", "a", "x_2", "y"}, names)
}

func TestBoolTokenizer_Positions(t *testing.T) {
	tokens, err := NewBoolTokenizer().Tokenize("A + B1'")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, 1, tokens[0].Pos)
	assert.Equal(t, 3, tokens[1].Pos)
	assert.Equal(t, 5, tokens[2].Pos)
	assert.Equal(t, 7, tokens[3].Pos)
}

func TestBoolTokenizer_ConstantValues(t *testing.T) {
	tokens, err := NewBoolTokenizer().Tokenize("1 0")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.True(t, tokens[0].Bool)
	assert.False(t, tokens[2].Bool)
}

func TestBoolTokenizer_SyntaxError(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
		char  rune
	}{
		{name: "ampersand", input: "A & B", pos: 3, char: '&'},
		{name: "digit other than 0 or 1", input: "A+2", pos: 3, char: '2'},
		{name: "leading underscore", input: "_A", pos: 1, char: '_'},
		{name: "multibyte before error", input: "A·B#", pos: 4, char: '#'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoolTokenizer().Tokenize(tt.input)
			require.Error(t, err)

			var se *apperr.SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.pos, se.Pos)
			assert.Equal(t, tt.char, se.Char)
		})
	}
}
