package puzzle

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for puzzle registration, lookup and parsing.
var (
	// ErrMalformedInput indicates the puzzle text does not match the expected shape.
	ErrMalformedInput = errors.New("puzzle: malformed input")

	// ErrUnknownPuzzle indicates no solution is registered for a date.
	ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")

	// ErrDuplicatePuzzle indicates a second registration for the same date.
	ErrDuplicatePuzzle = errors.New("puzzle: duplicate registration")

	// ErrBadDate indicates a year before 2015 or a day outside 1..25.
	ErrBadDate = errors.New("puzzle: invalid puzzle date")

	// ErrNoAnswer indicates a part without a kernel.
	ErrNoAnswer = errors.New("puzzle: part has no solution")
)

const (
	// FirstYear is the first year of the puzzle calendar.
	FirstYear = 2015
	// LastDay is the number of puzzles per year.
	LastDay = 25
)

// PartFunc computes one answer from the puzzle input.
type PartFunc func(in *Input) (int, error)

// Solution describes one day: its date, a human title and the two kernels.
// Part2 may be nil for single-part days.
type Solution struct {
	Year  int
	Day   int
	Title string
	Part1 PartFunc
	Part2 PartFunc
}

// Key returns the canonical "YYYY/DD" identifier of the solution.
func (s Solution) Key() string {
	return Key(s.Year, s.Day)
}

// Key formats a date as "YYYY/DD".
func Key(year, day int) string {
	return fmt.Sprintf("%04d/%02d", year, day)
}

// Answer is the outcome of a single part.
type Answer struct {
	Value   int
	Elapsed time.Duration
	Err     error
	Skipped bool // true when the part has no kernel
}

// Result groups both answers of one run.
type Result struct {
	Year  int
	Day   int
	Part1 Answer
	Part2 Answer
	Total time.Duration
}

// Err returns the first part error, if any. Skipped parts are not errors.
func (r Result) Err() error {
	if r.Part1.Err != nil && !r.Part1.Skipped {
		return fmt.Errorf("part 1: %w", r.Part1.Err)
	}
	if r.Part2.Err != nil && !r.Part2.Skipped {
		return fmt.Errorf("part 2: %w", r.Part2.Err)
	}
	return nil
}

// Malformed builds an error wrapping ErrMalformedInput with context.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
