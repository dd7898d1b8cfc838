package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day06"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestWays(t *testing.T) {
	cases := []struct{ t, d, want int }{
		{7, 9, 4},
		{15, 40, 8},
		{30, 200, 9},
		{71530, 940200, 71503},
		{4, 4, 0},
		{4, 3, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, day06.Ways(tc.t, tc.d), "t=%d d=%d", tc.t, tc.d)
	}
}

func TestPart1(t *testing.T) {
	got, err := day06.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 288, got)
}

func TestPart2(t *testing.T) {
	got, err := day06.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 71503, got)
}

func TestPart1_Malformed(t *testing.T) {
	_, err := day06.Part1(puzzle.NewInput("Time: 1 2\nDistance: 3\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
