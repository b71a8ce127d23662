package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"runlog/internal/bench"
	"runlog/internal/config"
	"runlog/internal/report"
	"runlog/internal/view"
)

var logger *zap.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "benchreport: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
		format     string
		wrap       int
	)

	cmd := &cobra.Command{
		Use:   "benchreport <log> [<after-log>]",
		Short: "Summarize benchmark run logs as Markdown tables",
		Long: `benchreport reads tab-separated benchmark logs and reports how many test
cases landed in each status category, per language and overall.

With one log it prints a summary table. With two logs it treats them as a
before/after pair and prints a delta table, a confusion matrix of status
transitions, and the list of suspicious status changes. The historical log
is restricted to cases still covered by the newer one so that retired
cases do not skew the comparison.`,
		Args: cobra.RangeArgs(1, 2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zapConfig := zap.NewProductionConfig()
			if verbose {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zapConfig.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Report.Format
			}
			if !cmd.Flags().Changed("wrap") {
				wrap = cfg.Report.Wrap
			}

			var markdown bytes.Buffer
			if len(args) == 1 {
				if err := summarize(&markdown, args[0]); err != nil {
					return err
				}
			} else {
				if err := compare(cmd, &markdown, args[0], args[1]); err != nil {
					return err
				}
			}

			return view.Render(view.Options{
				Format: format,
				Wrap:   wrap,
				Out:    cmd.OutOrStdout(),
			}, markdown.String())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&format, "format", view.FormatAuto, "output format: auto, markdown, or term")
	flags.IntVar(&wrap, "wrap", 0, "word-wrap column for terminal rendering (0 = detect)")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a runlog config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// summarize renders the single-run table for the log at path.
func summarize(out *bytes.Buffer, path string) error {
	log, err := bench.ReadLog(path, nil)
	if err != nil {
		return err
	}
	logger.Debug("benchmark log parsed",
		zap.String("path", path),
		zap.Int("cases", log.Global.Timing.Count),
		zap.Int("languages", len(log.PerLanguage)))

	return report.Summary(log).WriteMarkdown(out)
}

// compare renders the before/after report. The before log is restricted to
// cases present in the after log; cases new in the after log produce
// warnings on the error stream.
func compare(cmd *cobra.Command, out *bytes.Buffer, beforePath, afterPath string) error {
	after, err := bench.ReadLog(afterPath, nil)
	if err != nil {
		return err
	}
	before, err := bench.ReadLog(beforePath, after)
	if err != nil {
		return err
	}
	logger.Debug("benchmark logs parsed",
		zap.Int("before_cases", before.Global.Timing.Count),
		zap.Int("after_cases", after.Global.Timing.Count))

	compared := report.Compare(before, after)

	errs := cmd.ErrOrStderr()
	for _, warn := range compared.Warnings {
		fmt.Fprintf(errs, "warning: %v\n", warn)
	}

	return compared.WriteMarkdown(out)
}
