package puzzle

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	log *zap.Logger
	now func() time.Time
}

// WithRunLogger logs each part at debug level; nil is ignored.
func WithRunLogger(l *zap.Logger) RunOption {
	return func(o *runOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// withClock swaps the time source; tests use it for stable durations.
func withClock(now func() time.Time) RunOption {
	return func(o *runOptions) { o.now = now }
}

// Run executes both parts of s against in.
//
// Behavior:
//  1. A cancelled ctx marks every part not yet started with ctx.Err().
//  2. A nil PartFunc yields a Skipped answer with ErrNoAnswer.
//  3. A panicking kernel is reported as ErrMalformedInput; kernels index
//     freely into parsed input and a panic there means the input is broken.
func Run(ctx context.Context, s Solution, in *Input, opts ...RunOption) Result {
	o := runOptions{log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.With(zap.String("puzzle", s.Key()))

	res := Result{Year: s.Year, Day: s.Day}
	res.Part1 = runPart(ctx, log, 1, s.Part1, in, o.now)
	res.Part2 = runPart(ctx, log, 2, s.Part2, in, o.now)
	res.Total = res.Part1.Elapsed + res.Part2.Elapsed
	return res
}

func runPart(ctx context.Context, log *zap.Logger, part int, fn PartFunc, in *Input, now func() time.Time) (ans Answer) {
	if fn == nil {
		return Answer{Skipped: true, Err: ErrNoAnswer}
	}
	if err := ctx.Err(); err != nil {
		return Answer{Err: err}
	}

	start := now()
	defer func() {
		ans.Elapsed = now().Sub(start)
		if r := recover(); r != nil {
			ans.Err = fmt.Errorf("%w: kernel panic: %v", ErrMalformedInput, r)
		}
		log.Debug("part finished",
			zap.Int("part", part),
			zap.Int("value", ans.Value),
			zap.Duration("elapsed", ans.Elapsed),
			zap.Error(ans.Err),
		)
	}()

	v, err := fn(in)
	return Answer{Value: v, Err: err}
}

// Format writes the result in the classic two-line layout:
//
//	Part 1: 142
//	Part 2: 281
//
// With timing enabled each line carries its elapsed time and a final
// "Total time:" line is appended.
func (r Result) Format(w io.Writer, timing bool) error {
	for i, a := range []Answer{r.Part1, r.Part2} {
		if a.Skipped {
			continue
		}
		line := fmt.Sprintf("Part %d: ", i+1)
		if a.Err != nil {
			line += "error: " + a.Err.Error()
		} else {
			line += fmt.Sprint(a.Value)
		}
		if timing {
			line += fmt.Sprintf(" (%s)", a.Elapsed)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if timing {
		if _, err := fmt.Fprintf(w, "Total time: %s\n", r.Total); err != nil {
			return err
		}
	}
	return nil
}

// Expected holds known answers; nil means "not known yet".
type Expected struct {
	Part1 *int `yaml:"part1"`
	Part2 *int `yaml:"part2"`
}

// Mismatch describes one part whose answer differs from the expectation.
type Mismatch struct {
	Part int
	Want int
	Got  int
	Err  error
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("part %d: want %d, got error %v", m.Part, m.Want, m.Err)
	}
	return fmt.Sprintf("part %d: want %d, got %d", m.Part, m.Want, m.Got)
}

// Verify compares r with exp and returns the parts that disagree.
// Parts without an expectation are not checked.
func Verify(r Result, exp Expected) []Mismatch {
	var out []Mismatch
	check := func(part int, want *int, got Answer) {
		if want == nil || got.Skipped {
			return
		}
		if got.Err != nil || got.Value != *want {
			out = append(out, Mismatch{Part: part, Want: *want, Got: got.Value, Err: got.Err})
		}
	}
	check(1, exp.Part1, r.Part1)
	check(2, exp.Part2, r.Part2)
	return out
}
