package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteComparison(c *Comparison, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "E1: %s\n", c.Expression1)
	fmt.Fprintf(tw, "E2: %s\n\n", c.Expression2)

	header := append([]string{}, c.Variables...)
	header = append(header, "E1", "E2", "")
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(separator(len(header)), "\t"))

	for _, r := range c.Rows {
		row := make([]string, 0, len(header))
		for _, v := range r.Values {
			row = append(row, bit(v))
		}
		mark := ""
		if !r.Equal {
			mark = "x"
		}
		row = append(row, bit(r.Left), bit(r.Right), mark)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	verdict := "equivalent"
	if !c.Equivalent {
		verdict = "different"
	}
	fmt.Fprintf(tw, "%s: %d/%d rows agree (%.2f%%)\n", verdict, c.TotalRows-c.Mismatches, c.TotalRows, c.Agreement)

	tw.Flush()
}

func WriteSuite(r *SuiteReport, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Suite)

	header := []string{"Case", "Expect", "Vars", "Rows", "Mismatches", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(separator(len(header)), "\t"))

	for _, c := range r.Cases {
		status := "PASS"
		switch {
		case c.Error != "":
			status = "ERR: " + c.Error
		case !c.Passed:
			status = "FAIL"
		}
		row := []string{
			c.ID,
			c.Expect,
			fmt.Sprintf("%d", len(c.Variables)),
			fmt.Sprintf("%d", c.Rows),
			fmt.Sprintf("%d", c.Mismatches),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	s := r.Summary
	fmt.Fprintf(tw, "%d passed, %d failed, %d errors (%.2f%%)\n", s.Passed, s.Failed, s.Errors, s.PassRate)

	tw.Flush()
}

func separator(n int) []string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return sep
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
