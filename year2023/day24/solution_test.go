package day24_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day24"
)

const sample = `19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
`

func stones(t *testing.T) []day24.Hailstone {
	t.Helper()
	s, err := day24.Parse(puzzle.NewInput(sample))
	require.NoError(t, err)
	return s
}

func TestCountIntersections(t *testing.T) {
	got, err := day24.CountIntersections(stones(t), 7, 27)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCrossInside(t *testing.T) {
	s := stones(t)
	cases := []struct {
		i, j int
		want bool
	}{
		{0, 1, true},  // inside at x=14.333, y=15.333
		{0, 2, true},  // inside at x=11.667, y=16.667
		{0, 3, false}, // outside at x=6.2
		{0, 4, false}, // in the past for A
		{1, 2, false}, // parallel
	}
	for _, tc := range cases {
		got, err := day24.CrossInside(s[tc.i], s[tc.j], 7, 27)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d-%d", tc.i, tc.j)
	}
}

func TestThrow(t *testing.T) {
	pos, vel, err := day24.Throw(stones(t))
	require.NoError(t, err)
	var got [6]string
	for i := range 3 {
		got[i], got[3+i] = pos[i].RatString(), vel[i].RatString()
	}
	assert.Equal(t, [6]string{"24", "13", "10", "-3", "1", "2"}, got)
}

func TestPart2(t *testing.T) {
	got, err := day24.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 47, got)
}

func TestParse_Malformed(t *testing.T) {
	_, err := day24.Parse(puzzle.NewInput("1, 2, 3 @ 4, 5\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, _, err = day24.Throw(stones(t)[:2])
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
