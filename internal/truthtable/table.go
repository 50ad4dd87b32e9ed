package truthtable

import (
	"github.com/DjordjeVuckovic/truth-compare/internal/eval"
	"github.com/DjordjeVuckovic/truth-compare/internal/parser"
)

// Row is one evaluation point. Values is aligned with Table.Variables.
type Row struct {
	Index  int    `json:"index"`
	Values []bool `json:"values"`
	Left   bool   `json:"left"`
	Right  bool   `json:"right"`
	Equal  bool   `json:"equal"`
}

type Table struct {
	Variables []string `json:"variables"`
	Rows      []Row    `json:"rows"`
}

// Assignment rebuilds the variable mapping of r.
func (t *Table) Assignment(r Row) eval.Assignment {
	env := make(eval.Assignment, len(t.Variables))
	for v, name := range t.Variables {
		env[name] = r.Values[v]
	}
	return env
}

// Differences keeps only the rows where both sides disagree, in table order.
func (t *Table) Differences() []Row {
	var out []Row
	for _, r := range t.Rows {
		if !r.Equal {
			out = append(out, r)
		}
	}
	return out
}

func (t *Table) Mismatches() int {
	n := 0
	for _, r := range t.Rows {
		if !r.Equal {
			n++
		}
	}
	return n
}

func (t *Table) Matches() int {
	return len(t.Rows) - t.Mismatches()
}

// Equivalent reports whether both expressions agree on every row.
func (t *Table) Equivalent() bool {
	return t.Mismatches() == 0
}

// Compare evaluates left and right on every assignment of vars.
// vars must already hold the union of both variable sets in sorted order.
func Compare(vars []string, left, right parser.RPN, maxVars int) (*Table, error) {
	e, err := NewEnumerator(vars, maxVars)
	if err != nil {
		return nil, err
	}

	lp := eval.NewProgram(left)
	rp := eval.NewProgram(right)
	n := len(vars)
	values := make([]bool, e.Len()*n)
	rows := make([]Row, 0, e.Len())

	for i, env := range e.All() {
		l, err := lp.Run(env)
		if err != nil {
			return nil, err
		}
		r, err := rp.Run(env)
		if err != nil {
			return nil, err
		}

		vals := values[i*n : (i+1)*n : (i+1)*n]
		for v := range vars {
			vals[v] = e.Bit(i, v)
		}
		rows = append(rows, Row{Index: i, Values: vals, Left: l, Right: r, Equal: l == r})
	}

	return &Table{Variables: vars, Rows: rows}, nil
}
