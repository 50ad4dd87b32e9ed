package parser

import (
	"strings"

	"github.com/DjordjeVuckovic/truth-compare/internal/token"
)

// RPN is a postfix instruction sequence holding only operands
// (VARIABLE, CONSTANT) and the operators AND, OR, XOR and NOT.
type RPN []token.Token

// Equal reports whether both sequences contain the same instructions,
// ignoring source positions.
func (r RPN) Equal(o RPN) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// String renders the sequence space separated, e.g. "A B C AND OR".
func (r RPN) String() string {
	parts := make([]string, len(r))
	for i, tok := range r {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

// Variables returns the distinct variable names in order of first appearance.
func (r RPN) Variables() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, tok := range r {
		if tok.Type != token.VARIABLE {
			continue
		}
		if _, ok := seen[tok.Value]; ok {
			continue
		}
		seen[tok.Value] = struct{}{}
		names = append(names, tok.Value)
	}
	return names
}
