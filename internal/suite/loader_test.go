package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: laws
description: textbook identities
cases:
  - id: de-morgan
    expression1: "(A+B)'"
    expression2: "A'B'"
    expect: equivalent
  - id: not-absorption
    expression1: "A+B"
    expression2: "A"
    expect: different
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "laws", s.Name)
		require.Len(t, s.Cases, 2)
		assert.Equal(t, "de-morgan", s.Cases[0].ID)
		assert.Equal(t, "(A+B)'", s.Cases[0].Expression1)
		assert.Equal(t, ExpectDifferent, s.Cases[1].Expect)
	})

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "no cases",
			yaml: "name: empty\ncases: []\n",
			want: "no cases",
		},
		{
			name: "missing id",
			yaml: `
cases:
  - expression1: A
    expression2: A
    expect: equivalent
`,
			want: "no id",
		},
		{
			name: "duplicate id",
			yaml: `
cases:
  - id: c1
    expression1: A
    expression2: A
    expect: equivalent
  - id: c1
    expression1: B
    expression2: B
    expect: equivalent
`,
			want: "duplicate case id",
		},
		{
			name: "missing expression",
			yaml: `
cases:
  - id: c1
    expression1: A
    expect: equivalent
`,
			want: "needs both",
		},
		{
			name: "bad expect",
			yaml: `
cases:
  - id: c1
    expression1: A
    expression2: A
    expect: maybe
`,
			want: "invalid expect",
		},
		{
			name: "not yaml",
			yaml: "cases: [unclosed",
			want: "parse suite YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	content := `
name: file
cases:
  - id: xor
    expression1: "A^B"
    expression2: "AB' + A'B"
    expect: equivalent
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", s.Name)
	assert.Len(t, s.Cases, 1)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read suite file")
}
