package compiler

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/truth-compare/internal/ast"
	"github.com/DjordjeVuckovic/truth-compare/internal/markup"
	"github.com/DjordjeVuckovic/truth-compare/internal/parser"
	"github.com/DjordjeVuckovic/truth-compare/internal/token"
	"github.com/DjordjeVuckovic/truth-compare/internal/truthtable"
)

// Expression is the compiled form of one input text. It is never modified
// after Compile returns.
type Expression struct {
	Text      string
	RPN       parser.RPN
	Variables []string
	AST       ast.Node
}

// Compile runs the whole pipeline: normalize, tokenize, convert to postfix
// and build the display tree.
func Compile(text string) (*Expression, error) {
	normalized := token.Normalize(text)

	tokens, err := token.NewBoolTokenizer().Tokenize(normalized)
	if err != nil {
		return nil, err
	}

	rpn, err := parser.ToRPN(tokens)
	if err != nil {
		return nil, err
	}

	tree, err := ast.Build(rpn)
	if err != nil {
		return nil, err
	}

	return &Expression{
		Text:      text,
		RPN:       rpn,
		Variables: truthtable.SortVariables(rpn.Variables()),
		AST:       tree,
	}, nil
}

// Markup renders the expression as LaTeX. A failing renderer yields "".
func (e *Expression) Markup() (out string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Failed to render markup", "expression", e.Text, "panic", r)
			out = ""
		}
	}()
	return markup.LaTeX(e.AST)
}

type Options struct {
	MaxVariables int
}

// Result is everything a table renderer needs for one compile-and-compare
// cycle. When Err is set, Table is nil.
type Result struct {
	Left        *Expression
	Right       *Expression
	LeftMarkup  string
	RightMarkup string
	Table       *truthtable.Table
	Err         error
}

// Message is the human readable failure, empty on success.
func (r *Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Compare compiles both texts and evaluates them on every assignment of
// their combined variables. The first failure aborts the whole cycle.
func Compare(text1, text2 string, opts Options) *Result {
	left, err := Compile(text1)
	if err != nil {
		return &Result{Err: fmt.Errorf("expression 1: %w", err)}
	}
	right, err := Compile(text2)
	if err != nil {
		return &Result{Err: fmt.Errorf("expression 2: %w", err)}
	}

	vars := truthtable.SortVariables(left.Variables, right.Variables)
	table, err := truthtable.Compare(vars, left.RPN, right.RPN, opts.MaxVariables)
	if err != nil {
		return &Result{Err: err}
	}

	return &Result{
		Left:        left,
		Right:       right,
		LeftMarkup:  left.Markup(),
		RightMarkup: right.Markup(),
		Table:       table,
	}
}

// Rows returns the table rows, optionally only those where both sides differ.
func (r *Result) Rows(differencesOnly bool) []truthtable.Row {
	if r.Table == nil {
		return nil
	}
	if differencesOnly {
		return r.Table.Differences()
	}
	return r.Table.Rows
}
