package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/DjordjeVuckovic/truth-compare/internal/truthtable"
)

type cliConfig struct {
	Expression1     string
	Expression2     string
	DifferencesOnly bool
	SuitePath       string
	Output          string
	MaxVariables    int
	Quiet           bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Expression1, "e1", "", "First Boolean expression")
	flag.StringVar(&cfg.Expression2, "e2", "", "Second Boolean expression")
	flag.BoolVar(&cfg.DifferencesOnly, "diff", false, "Only print rows where the expressions differ")
	flag.StringVar(&cfg.SuitePath, "suite", "", "Path to a comparison suite YAML (batch mode)")
	flag.StringVar(&cfg.Output, "output", "", "Output path for a JSON report")
	flag.IntVar(&cfg.MaxVariables, "max-vars", truthtable.DefaultMaxVariables, "Maximum number of distinct variables")
	flag.BoolVar(&cfg.Quiet, "q", false, "Suppress informational logs")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	if c.MaxVariables < 1 || c.MaxVariables > truthtable.HardMaxVariables {
		return fmt.Errorf("max-vars must be between 1 and %d, got %d", truthtable.HardMaxVariables, c.MaxVariables)
	}
	if c.SuitePath != "" {
		if c.Expression1 != "" || c.Expression2 != "" {
			return errors.New("-suite cannot be combined with -e1/-e2")
		}
		return nil
	}
	if c.Expression1 == "" || c.Expression2 == "" {
		return errors.New("both -e1 and -e2 are required unless -suite is given")
	}
	return nil
}
