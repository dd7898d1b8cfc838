package day11_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day11"
)

const sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestSumDistances(t *testing.T) {
	cases := []struct{ factor, want int }{
		{1, 292},
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tc := range cases {
		got, err := day11.SumDistances(puzzle.NewInput(sample), tc.factor)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "factor %d", tc.factor)
	}
}

func TestPart1(t *testing.T) {
	got, err := day11.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 374, got)
}

func TestSumDistances_BadFactor(t *testing.T) {
	_, err := day11.SumDistances(puzzle.NewInput(sample), 0)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
