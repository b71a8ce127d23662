package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"runlog/internal/cast"
	"runlog/internal/config"
)

var logger *zap.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "castcrop: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
		begin      float64
		end        float64
		output     string
	)

	cmd := &cobra.Command{
		Use:   "castcrop <recording>",
		Short: "Trim a terminal session recording to a time window",
		Long: `castcrop reads a newline-delimited JSON recording (header line followed
by [timestamp, kind, payload] events), keeps only the events inside the
crop window, rebases their timestamps to start at zero, and collapses
everything before the window into one synthetic prefix event.`,
		Args: cobra.ExactArgs(1),
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

			window := cast.Window{Begin: cfg.Crop.Begin, End: cfg.Crop.End}
			if cmd.Flags().Changed("begin") {
				window.Begin = begin
			}
			if cmd.Flags().Changed("end") {
				window.End = end
			}

			recording, err := cast.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("recording parsed",
				zap.String("path", args[0]),
				zap.Int("events", len(recording.Events)))

			cropped, err := cast.Crop(recording.Events, window)
			if err != nil {
				return err
			}
			logger.Debug("recording cropped",
				zap.Float64("begin", window.Begin),
				zap.Float64("end", window.End),
				zap.Int("kept", len(cropped)))

			out := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer file.Close()
				out = file
			}

			result := &cast.Recording{Header: recording.Header, Events: cropped}
			return result.Write(out)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&begin, "begin", cast.DefaultWindow.Begin, "start of the crop window in seconds")
	flags.Float64Var(&end, "end", cast.DefaultWindow.End, "end of the crop window in seconds (exclusive)")
	flags.StringVarP(&output, "output", "o", "", "write the cropped recording to a file instead of stdout")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a runlog config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
