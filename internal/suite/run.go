package suite

import (
	"log/slog"

	"github.com/DjordjeVuckovic/truth-compare/internal/compiler"
)

type CaseResult struct {
	Case       Case
	Variables  []string
	Rows       int
	Mismatches int
	Equivalent bool
	Passed     bool
	Error      string
}

// Run compares every case in order. A case that fails to compile is
// reported as failed with its message, the rest of the suite still runs.
func Run(s *Suite, opts compiler.Options) []CaseResult {
	results := make([]CaseResult, 0, len(s.Cases))
	for _, c := range s.Cases {
		res := compiler.Compare(c.Expression1, c.Expression2, opts)
		if res.Err != nil {
			slog.Debug("Suite case failed to compile", "case", c.ID, "error", res.Err)
			results = append(results, CaseResult{Case: c, Error: res.Message()})
			continue
		}

		eq := res.Table.Equivalent()
		results = append(results, CaseResult{
			Case:       c,
			Variables:  res.Table.Variables,
			Rows:       len(res.Table.Rows),
			Mismatches: res.Table.Mismatches(),
			Equivalent: eq,
			Passed:     eq == (c.Expect == ExpectEquivalent),
		})
	}
	return results
}

// AllPassed is false when any case failed or errored.
func AllPassed(results []CaseResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
