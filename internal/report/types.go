package report

import (
	"time"

	"github.com/DjordjeVuckovic/truth-compare/internal/truthtable"
)

// Comparison is the printable outcome of one compile-and-compare cycle.
type Comparison struct {
	Expression1 string           `json:"expression1"`
	Expression2 string           `json:"expression2"`
	Markup1     string           `json:"markup1,omitempty"`
	Markup2     string           `json:"markup2,omitempty"`
	Variables   []string         `json:"variables"`
	Rows        []truthtable.Row `json:"rows"`
	TotalRows   int              `json:"total_rows"`
	Mismatches  int              `json:"mismatches"`
	Agreement   float64          `json:"agreement_pct"`
	Equivalent  bool             `json:"equivalent"`
}

type SuiteReport struct {
	Suite       string      `json:"suite"`
	GeneratedAt time.Time   `json:"generated_at"`
	Cases       []CaseEntry `json:"cases"`
	Summary     Summary     `json:"summary"`
}

type CaseEntry struct {
	ID          string   `json:"id"`
	Expression1 string   `json:"expression1"`
	Expression2 string   `json:"expression2"`
	Expect      string   `json:"expect"`
	Variables   []string `json:"variables,omitempty"`
	Rows        int      `json:"rows"`
	Mismatches  int      `json:"mismatches"`
	Equivalent  bool     `json:"equivalent"`
	Passed      bool     `json:"passed"`
	Error       string   `json:"error,omitempty"`
}

type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Errors   int     `json:"errors"`
	PassRate float64 `json:"pass_rate_pct"`
}
