package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/truth-compare/internal/compiler"
)

func TestRun(t *testing.T) {
	s := &Suite{
		Name: "mixed",
		Cases: []Case{
			{ID: "de-morgan", Expression1: "(A+B)'", Expression2: "A'B'", Expect: ExpectEquivalent},
			{ID: "const", Expression1: "1", Expression2: "0", Expect: ExpectDifferent},
			{ID: "wrong", Expression1: "A+B", Expression2: "A", Expect: ExpectEquivalent},
			{ID: "broken", Expression1: "(A", Expression2: "A", Expect: ExpectEquivalent},
		},
	}

	results := Run(s, compiler.Options{})
	require.Len(t, results, 4)

	assert.True(t, results[0].Passed)
	assert.True(t, results[0].Equivalent)
	assert.Equal(t, []string{"A", "B"}, results[0].Variables)
	assert.Equal(t, 4, results[0].Rows)

	assert.True(t, results[1].Passed)
	assert.Equal(t, 1, results[1].Rows)
	assert.Equal(t, 1, results[1].Mismatches)

	assert.False(t, results[2].Passed)
	assert.Equal(t, 1, results[2].Mismatches)
	assert.Empty(t, results[2].Error)

	assert.False(t, results[3].Passed)
	assert.Contains(t, results[3].Error, "expression 1")

	assert.False(t, AllPassed(results))
	assert.True(t, AllPassed(results[:2]))
}
