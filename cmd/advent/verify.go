package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent/puzzle"
)

var errVerifyFailed = errors.New("verify: answers do not match")

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935"))
	newStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9A825"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

var verifyCmd = &cobra.Command{
	Use:   "verify [YEAR]",
	Short: "Run every puzzle with an input file and compare with known answers",
	Long: `Runs each registered puzzle whose input exists under input_dir and checks
the answers against the answers map of the config file:

  answers:
    "2023/01": {part1: 142, part2: 281}

Puzzles without known answers are reported as NEW. Any mismatch or error
makes the command exit non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: verifyPuzzles,
}

func verifyPuzzles(cmd *cobra.Command, args []string) error {
	sols := registry.All()
	if len(args) == 1 {
		year, err := strconv.Atoi(args[0])
		if err != nil || year < puzzle.FirstYear {
			return fmt.Errorf("%w: year %q", puzzle.ErrBadDate, args[0])
		}
		sols = registry.Year(year)
	}

	w := cmd.OutOrStdout()
	ran, failed := 0, 0
	for _, s := range sols {
		path := cfg.InputPath(s.Year, s.Day)
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No input, skipping", zap.String("puzzle", s.Key()), zap.String("path", path))
			continue
		}
		if err != nil {
			return fmt.Errorf("reading input %s: %w", path, err)
		}
		ran++

		in := puzzle.NewInput(string(raw), puzzle.WithLogger(logger))
		res := puzzle.Run(commandContext(cmd), s, in, puzzle.WithRunLogger(logger))
		exp, known := cfg.Expected(s.Year, s.Day)

		var status, detail string
		switch mismatches := puzzle.Verify(res, exp); {
		case len(mismatches) > 0:
			failed++
			status = failStyle.Render("FAIL")
			lines := make([]string, len(mismatches))
			for i, m := range mismatches {
				lines[i] = m.String()
			}
			detail = strings.Join(lines, "; ")
		case res.Err() != nil:
			failed++
			status, detail = failStyle.Render("FAIL"), res.Err().Error()
		case !known:
			status, detail = newStyle.Render("NEW "), answers(res)
		default:
			status, detail = passStyle.Render("PASS"), answers(res)
		}
		if _, err := fmt.Fprintf(w, "%s %s  %s %s\n", status, s.Key(), s.Title, dimStyle.Render(detail)); err != nil {
			return err
		}
	}

	logger.Info("Verification finished", zap.Int("ran", ran), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d puzzles failed", errVerifyFailed, failed, ran)
	}
	return nil
}

func answers(r puzzle.Result) string {
	if r.Part2.Skipped {
		return fmt.Sprintf("(%d)", r.Part1.Value)
	}
	return fmt.Sprintf("(%d, %d)", r.Part1.Value, r.Part2.Value)
}
