package puzzle

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Input is the raw puzzle text plus a logger for optional debug traces.
type Input struct {
	raw string
	log *zap.Logger
}

// InputOption configures an Input.
type InputOption func(*Input)

// WithLogger attaches a logger; nil is ignored.
func WithLogger(l *zap.Logger) InputOption {
	return func(in *Input) {
		if l != nil {
			in.log = l
		}
	}
}

// NewInput wraps raw puzzle text. Windows line endings are normalized.
func NewInput(raw string, opts ...InputOption) *Input {
	in := &Input{
		raw: strings.ReplaceAll(raw, "\r\n", "\n"),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Raw returns the normalized text.
func (in *Input) Raw() string { return in.raw }

// Logger returns the attached logger (never nil).
func (in *Input) Logger() *zap.Logger { return in.log }

// Lines splits the text into lines, dropping trailing blank lines.
// Blank lines in the middle are kept, since several puzzles use them as
// section separators.
func (in *Input) Lines() []string {
	text := strings.TrimRight(in.raw, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// NonEmptyLines returns every line that is not blank.
func (in *Input) NonEmptyLines() []string {
	lines := in.Lines()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Blocks splits the text into paragraphs separated by blank lines.
func (in *Input) Blocks() [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, l := range in.Lines() {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

var intPattern = regexp.MustCompile(`-?\d+`)

// Ints extracts every (optionally negative) integer appearing in s.
func Ints(s string) []int {
	matches := intPattern.FindAllString(s, -1)
	nums := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			// only reachable on overflow; skip rather than corrupt the slice
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

// Atoi parses s as a base-10 int, wrapping failures in ErrMalformedInput.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Malformed("%q is not an integer", s)
	}
	return n, nil
}

// Fields parses every whitespace-separated field of s as an int.
func Fields(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
