package day01_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2024/day01"
)

const sample = `3   4
4   3
2   5
1   3
3   9
3   3
`

func TestParts(t *testing.T) {
	in := puzzle.NewInput(sample)

	p1, err := day01.Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 11, p1)

	p2, err := day01.Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 31, p2)
}

func TestSimilarity_Absent(t *testing.T) {
	assert.Equal(t, 0, day01.Similarity([]int{1, 2}, []int{3, 4}))
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"1 2 3\n", "1 x\n", "7\n"} {
		_, _, err := day01.Parse(puzzle.NewInput(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
