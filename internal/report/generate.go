package report

import (
	"time"

	"github.com/DjordjeVuckovic/truth-compare/internal/compiler"
	"github.com/DjordjeVuckovic/truth-compare/internal/suite"
	"github.com/DjordjeVuckovic/truth-compare/pkg/utils"
)

// FromResult builds a comparison report. res must not carry an error.
func FromResult(text1, text2 string, res *compiler.Result, differencesOnly bool) *Comparison {
	total := len(res.Table.Rows)
	mismatches := res.Table.Mismatches()
	return &Comparison{
		Expression1: text1,
		Expression2: text2,
		Markup1:     res.LeftMarkup,
		Markup2:     res.RightMarkup,
		Variables:   res.Table.Variables,
		Rows:        res.Rows(differencesOnly),
		TotalRows:   total,
		Mismatches:  mismatches,
		Agreement:   utils.Percent(total-mismatches, total),
		Equivalent:  mismatches == 0,
	}
}

func Generate(s *suite.Suite, results []suite.CaseResult) *SuiteReport {
	r := &SuiteReport{
		Suite:       s.Name,
		GeneratedAt: time.Now().UTC(),
		Cases:       make([]CaseEntry, 0, len(results)),
	}

	for _, cr := range results {
		r.Cases = append(r.Cases, CaseEntry{
			ID:          cr.Case.ID,
			Expression1: cr.Case.Expression1,
			Expression2: cr.Case.Expression2,
			Expect:      string(cr.Case.Expect),
			Variables:   cr.Variables,
			Rows:        cr.Rows,
			Mismatches:  cr.Mismatches,
			Equivalent:  cr.Equivalent,
			Passed:      cr.Passed,
			Error:       cr.Error,
		})

		r.Summary.Total++
		switch {
		case cr.Error != "":
			r.Summary.Errors++
		case cr.Passed:
			r.Summary.Passed++
		default:
			r.Summary.Failed++
		}
	}
	r.Summary.PassRate = utils.Percent(r.Summary.Passed, r.Summary.Total)

	return r
}
