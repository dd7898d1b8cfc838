package puzzle

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// tick returns a clock advancing by one millisecond per call.
func tick() func() time.Time {
	t0 := time.Unix(0, 0)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Millisecond)
	}
}

func TestRun_BothParts(t *testing.T) {
	s := Solution{Year: 2023, Day: 1, Part1: constant(142), Part2: constant(281)}
	res := Run(context.Background(), s, NewInput(""), withClock(tick()), WithRunLogger(zap.NewNop()))

	require.NoError(t, res.Err())
	assert.Equal(t, 142, res.Part1.Value)
	assert.Equal(t, 281, res.Part2.Value)
	assert.Equal(t, time.Millisecond, res.Part1.Elapsed)
	assert.Equal(t, 2*time.Millisecond, res.Total)

	var buf bytes.Buffer
	require.NoError(t, res.Format(&buf, false))
	assert.Equal(t, "Part 1: 142\nPart 2: 281\n", buf.String())

	buf.Reset()
	require.NoError(t, res.Format(&buf, true))
	assert.Equal(t, "Part 1: 142 (1ms)\nPart 2: 281 (1ms)\nTotal time: 2ms\n", buf.String())
}

func TestRun_SinglePartAndErrors(t *testing.T) {
	boom := errors.New("boom")
	s := Solution{
		Year: 2023, Day: 25,
		Part1: func(*Input) (int, error) { return 0, boom },
	}
	res := Run(context.Background(), s, NewInput(""))
	assert.ErrorIs(t, res.Part1.Err, boom)
	assert.True(t, res.Part2.Skipped)
	assert.ErrorIs(t, res.Err(), boom)

	var buf bytes.Buffer
	require.NoError(t, res.Format(&buf, false))
	assert.Equal(t, "Part 1: error: boom\n", buf.String())
}

func TestRun_SinglePartSucceeds(t *testing.T) {
	s := Solution{Year: 2023, Day: 25, Part1: constant(54)}
	res := Run(context.Background(), s, NewInput(""))
	assert.Equal(t, 54, res.Part1.Value)
	assert.True(t, res.Part2.Skipped)
	assert.ErrorIs(t, res.Part2.Err, ErrNoAnswer)
	require.NoError(t, res.Err())

	part2 := 7
	assert.Empty(t, Verify(res, Expected{Part1: &res.Part1.Value, Part2: &part2}))

	var buf bytes.Buffer
	require.NoError(t, res.Format(&buf, false))
	assert.Equal(t, "Part 1: 54\n", buf.String())
}

func TestRun_PanicBecomesMalformed(t *testing.T) {
	s := Solution{
		Year: 2023, Day: 3,
		Part1: func(in *Input) (int, error) { return len(in.Lines()[5]), nil },
	}
	res := Run(context.Background(), s, NewInput("x"))
	assert.ErrorIs(t, res.Part1.Err, ErrMalformedInput)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := Run(ctx, Solution{Year: 2023, Day: 1, Part1: constant(1), Part2: constant(2)}, NewInput(""))
	assert.ErrorIs(t, res.Part1.Err, context.Canceled)
	assert.ErrorIs(t, res.Part2.Err, context.Canceled)
}

func TestVerify(t *testing.T) {
	one, two := 1, 2
	res := Result{Part1: Answer{Value: 1}, Part2: Answer{Value: 3}}

	assert.Empty(t, Verify(res, Expected{Part1: &one}))

	got := Verify(res, Expected{Part1: &one, Part2: &two})
	require.Len(t, got, 1)
	assert.Equal(t, Mismatch{Part: 2, Want: 2, Got: 3}, got[0])
	assert.Equal(t, "part 2: want 2, got 3", got[0].String())
}
