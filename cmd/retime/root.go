package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
	flagLogLevel   string
	flagLogFile    string
	flagDryRun     bool
)

// newRootCmd builds the retime command tree: the root command itself
// implements §6.3's positional-argument contract
// (input_filepath control_steps clock_period [output_filepath]); "gen"
// drives circuitgen to emit sample circuit files.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "retime input_filepath control_steps clock_period [output_filepath]",
		Short:         "Retime a synchronous circuit graph to meet a target clock period",
		Version:       version,
		Args:          cobra.RangeArgs(0, 4),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRetime,
	}

	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to retime.yaml (default: ./retime.yaml if present)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "rotating log file path (empty: console only)")
	root.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "run the pipeline and report the retiming without writing an output file")

	root.AddCommand(newGenCmd())

	return root
}

const version = "0.1.0"

// parsePositional layers §6.3's positional arguments over cfg, which
// always win over defaults/file/env (SPEC_FULL.md §11).
func parsePositional(cfg *appConfig, args []string) error {
	if len(args) >= 1 {
		cfg.InputFilepath = args[0]
	}
	if len(args) >= 2 {
		v, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("retime: control_steps %q: %w", args[1], err)
		}
		cfg.ControlSteps = v
	}
	if len(args) >= 3 {
		v, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("retime: clock_period %q: %w", args[2], err)
		}
		cfg.ClockPeriod = v
	}
	if len(args) >= 4 {
		cfg.OutputFilepath = args[3]
	}

	return nil
}
