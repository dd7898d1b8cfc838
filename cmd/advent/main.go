// Command advent runs the puzzle solutions registered in this module.
//
//	advent run 2023 1 --input inputs/2023/01.txt --timing
//	advent list
//	advent verify 2024
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023"
	"github.com/katalvlaran/advent/year2024"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger

	registry = newRegistry()
)

func newRegistry() *puzzle.Registry {
	r := puzzle.NewRegistry()
	year2023.Register(r)
	year2024.Register(r)
	return r
}

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Run Advent of Code puzzle solutions",
	Long: `advent runs the registered daily puzzle solutions against their inputs.

Settings come from advent.yaml (or --config / ADVENT_CONFIG), an optional
.env file and ADVENT_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		l, err := c.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, logger = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file (default: advent.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Input file, or - for stdin (default: <input_dir>/<year>/<dd>.txt)")
	runCmd.Flags().BoolVarP(&runTiming, "timing", "t", false, "Print elapsed time per part")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext returns cmd's context, falling back to Background for
// commands invoked outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
