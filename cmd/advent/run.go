package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent/puzzle"
)

var (
	runInput  string
	runTiming bool
)

var runCmd = &cobra.Command{
	Use:   "run YEAR DAY",
	Short: "Solve one puzzle and print both answers",
	Long: `Reads the puzzle input and prints

  Part 1: <answer>
  Part 2: <answer>

With --timing (or timing: true in the config) each line carries its elapsed
time and a total is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: runPuzzle,
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	year, day, err := parseDate(args[0], args[1])
	if err != nil {
		return err
	}
	sol, err := registry.Lookup(year, day)
	if err != nil {
		return err
	}

	path := runInput
	if path == "" {
		path = cfg.InputPath(year, day)
	}
	raw, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	logger.Debug("Solving puzzle", zap.String("puzzle", sol.Key()), zap.String("input", path))

	in := puzzle.NewInput(raw, puzzle.WithLogger(logger))
	res := puzzle.Run(commandContext(cmd), sol, in, puzzle.WithRunLogger(logger))

	timing := runTiming || cfg.Timing
	if timing {
		logger.Info("Puzzle solved", zap.String("puzzle", sol.Key()), zap.Duration("total", res.Total))
	}
	if err := res.Format(cmd.OutOrStdout(), timing); err != nil {
		return err
	}
	return res.Err()
}

// parseDate validates the YEAR and DAY arguments.
func parseDate(y, d string) (int, int, error) {
	year, err := strconv.Atoi(y)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: year %q", puzzle.ErrBadDate, y)
	}
	day, err := strconv.Atoi(d)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: day %q", puzzle.ErrBadDate, d)
	}
	if year < puzzle.FirstYear || day < 1 || day > puzzle.LastDay {
		return 0, 0, fmt.Errorf("%w: %d/%d", puzzle.ErrBadDate, year, day)
	}
	return year, day, nil
}

// readInput loads path, where "-" means stdin.
func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading input %s: %w", path, err)
	}
	return string(data), nil
}
