package token

import (
	"unicode"

	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
)

type BoolTokenizer struct {
	input []rune
	pos   int
}

func NewBoolTokenizer() *BoolTokenizer {
	return &BoolTokenizer{}
}

// Tokenize converts normalized input into a slice of Tokens, with implicit
// AND operators already inserted between juxtaposed operands.
// Example: Input: `A(B + !C)'` -> A * ( B + ! C ) '
func (t *BoolTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(input)
	t.pos = 0

	var tokens []Token

	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		col := t.pos + 1
		switch {
		case ch == ' ':
			t.pos++
			continue
		case ch == '(':
			tokens = append(tokens, Token{Type: LPAREN, Value: "(", Pos: col})
		case ch == ')':
			tokens = append(tokens, Token{Type: RPAREN, Value: ")", Pos: col})
		case ch == '+' || ch == '|':
			tokens = append(tokens, Token{Type: OR, Value: string(ch), Pos: col})
		case ch == '*' || ch == '·' || ch == '.':
			tokens = append(tokens, Token{Type: AND, Value: string(ch), Pos: col})
		case ch == '^':
			tokens = append(tokens, Token{Type: XOR, Value: "^", Pos: col})
		case ch == '!' || ch == '~':
			tokens = append(tokens, Token{Type: NOT, Value: string(ch), Prefix: true, Pos: col})
		case ch == '\'':
			tokens = append(tokens, Token{Type: POSTFIX_NOT, Value: "'", Pos: col})
		case ch == '1':
			tokens = append(tokens, Token{Type: CONSTANT, Value: "1", Bool: true, Pos: col})
		case ch == '0':
			tokens = append(tokens, Token{Type: CONSTANT, Value: "0", Pos: col})
		case unicode.IsLetter(ch):
			tokens = append(tokens, t.readVariable())
			continue
		default:
			return nil, &apperr.SyntaxError{Pos: col, Char: ch}
		}
		t.pos++
	}

	return InsertImplicitAnd(tokens), nil
}

// readVariable consumes one letter and any digits or underscores after it.
// A following letter starts a new variable, so "AB" is A and B.
func (t *BoolTokenizer) readVariable() Token {
	start := t.pos
	t.pos++
	for t.pos < len(t.input) && isSuffixChar(t.input[t.pos]) {
		t.pos++
	}
	return Token{Type: VARIABLE, Value: string(t.input[start:t.pos]), Pos: start + 1}
}

func isSuffixChar(ch rune) bool {
	return ('0' <= ch && ch <= '9') || ch == '_'
}

// InsertImplicitAnd adds an AND between every value-ending token and the
// value-starting token that follows it, so "AB" reads as "A*B".
func InsertImplicitAnd(tokens []Token) []Token {
	if len(tokens) < 2 {
		return tokens
	}

	out := make([]Token, 0, len(tokens)*2)
	for i, tok := range tokens {
		if i > 0 && needsImplicitAnd(tokens[i-1], tok) {
			out = append(out, Token{Type: AND, Value: "*"})
		}
		out = append(out, tok)
	}
	return out
}

func needsImplicitAnd(prev, curr Token) bool {
	prevIsValue := prev.Type == VARIABLE || prev.Type == CONSTANT || prev.Type == RPAREN || prev.Type == POSTFIX_NOT
	currIsValue := curr.Type == VARIABLE || curr.Type == CONSTANT || curr.Type == LPAREN || (curr.Type == NOT && curr.Prefix)
	return prevIsValue && currIsValue
}
