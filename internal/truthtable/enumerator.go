package truthtable

import (
	"iter"

	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/DjordjeVuckovic/truth-compare/internal/eval"
)

const (
	// DefaultMaxVariables keeps a full table at 65536 rows.
	DefaultMaxVariables = 16
	// HardMaxVariables is the ceiling no configuration can raise. Compare
	// materializes every row, so 20 variables is about 1M rows and 60MB.
	HardMaxVariables = 20
)

// Enumerator walks every assignment of a sorted variable list. The first
// variable is the most significant bit of the row index.
type Enumerator struct {
	vars []string
}

// NewEnumerator fails with apperr.TooManyVariablesError when vars exceeds
// maxVars. A maxVars <= 0 selects DefaultMaxVariables.
func NewEnumerator(vars []string, maxVars int) (*Enumerator, error) {
	if maxVars <= 0 {
		maxVars = DefaultMaxVariables
	}
	maxVars = min(maxVars, HardMaxVariables)
	if len(vars) > maxVars {
		return nil, &apperr.TooManyVariablesError{Count: len(vars), Max: maxVars}
	}
	return &Enumerator{vars: vars}, nil
}

func (e *Enumerator) Variables() []string {
	return e.vars
}

// Len is 2^n, which is 1 for an empty variable list.
func (e *Enumerator) Len() int {
	return 1 << len(e.vars)
}

// Bit returns the value variable v takes in row i.
func (e *Enumerator) Bit(i, v int) bool {
	n := len(e.vars)
	return (i>>(n-1-v))&1 == 1
}

// At materializes the assignment for row i.
func (e *Enumerator) At(i int) eval.Assignment {
	env := make(eval.Assignment, len(e.vars))
	e.fill(env, i)
	return env
}

func (e *Enumerator) fill(env eval.Assignment, i int) {
	for v, name := range e.vars {
		env[name] = e.Bit(i, v)
	}
}

// All yields every assignment in canonical order. The yielded map is reused
// between iterations; callers that keep it must copy it.
func (e *Enumerator) All() iter.Seq2[int, eval.Assignment] {
	return func(yield func(int, eval.Assignment) bool) {
		env := make(eval.Assignment, len(e.vars))
		for i := 0; i < e.Len(); i++ {
			e.fill(env, i)
			if !yield(i, env) {
				return
			}
		}
	}
}

// Enumerate returns a fresh assignment for every row.
func Enumerate(vars []string, maxVars int) ([]eval.Assignment, error) {
	e, err := NewEnumerator(vars, maxVars)
	if err != nil {
		return nil, err
	}
	out := make([]eval.Assignment, 0, e.Len())
	for i := range e.Len() {
		out = append(out, e.At(i))
	}
	return out, nil
}
