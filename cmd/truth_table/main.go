package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/truth-compare/internal/compiler"
	"github.com/DjordjeVuckovic/truth-compare/internal/report"
	"github.com/DjordjeVuckovic/truth-compare/internal/suite"
)

func main() {
	cfg := parseFlags()
	if cfg.Quiet {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	if err := cfg.validate(); err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	opts := compiler.Options{MaxVariables: cfg.MaxVariables}

	if cfg.SuitePath != "" {
		runSuite(cfg, opts)
		return
	}
	runSingle(cfg, opts)
}

func runSingle(cfg cliConfig, opts compiler.Options) {
	res := compiler.Compare(cfg.Expression1, cfg.Expression2, opts)
	if res.Err != nil {
		slog.Error("Comparison failed", "error", res.Err)
		os.Exit(1)
	}

	rpt := report.FromResult(cfg.Expression1, cfg.Expression2, res, cfg.DifferencesOnly)
	report.WriteComparison(rpt, os.Stdout)
	writeJSON(rpt, cfg.Output)
}

func runSuite(cfg cliConfig, opts compiler.Options) {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	results := suite.Run(s, opts)
	rpt := report.Generate(s, results)
	report.WriteSuite(rpt, os.Stdout)
	writeJSON(rpt, cfg.Output)

	if !suite.AllPassed(results) {
		slog.Error("Suite expectations failed", "failed", rpt.Summary.Failed, "errors", rpt.Summary.Errors)
		os.Exit(1)
	}
}

func writeJSON(rpt any, outputPath string) {
	if outputPath == "" {
		return
	}
	if err := report.WriteJSON(rpt, outputPath); err != nil {
		slog.Error("Failed to write JSON report", "error", err)
		os.Exit(1)
	}
	slog.Info("Report written", "path", outputPath)
}
