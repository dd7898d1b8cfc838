package day03_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day03"
)

const sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestPart1(t *testing.T) {
	got, err := day03.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 4361, got)
}

func TestPart2(t *testing.T) {
	got, err := day03.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 467835, got)
}

// TestPart2_EqualNumbers: a gear between two identical numbers still counts.
func TestPart2_EqualNumbers(t *testing.T) {
	got, err := day03.Part2(puzzle.NewInput("12*12\n.....\n"))
	require.NoError(t, err)
	assert.Equal(t, 144, got)
}

func TestParse_Ragged(t *testing.T) {
	_, err := day03.Parse(puzzle.NewInput("123\n4\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
