package apperr

import "fmt"

// SyntaxError reports an unrecognized character during tokenization.
type SyntaxError struct {
	Pos  int
	Char rune
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: unexpected character %q at position %d", e.Char, e.Pos)
}

// MismatchedParenthesesError reports an unbalanced "(" or ")".
// Pos points at the offending parenthesis when known.
type MismatchedParenthesesError struct {
	Pos int
}

func (e *MismatchedParenthesesError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("mismatched parentheses at position %d", e.Pos)
	}
	return "mismatched parentheses"
}

type MalformedExpressionError struct {
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	return "malformed expression: " + e.Reason
}

func NewMalformed(format string, args ...any) *MalformedExpressionError {
	return &MalformedExpressionError{Reason: fmt.Sprintf(format, args...)}
}

type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// TooManyVariablesError is returned before enumerating a table that would
// exceed the configured variable cap.
type TooManyVariablesError struct {
	Count int
	Max   int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("too many variables: %d distinct names, at most %d are supported", e.Count, e.Max)
}
