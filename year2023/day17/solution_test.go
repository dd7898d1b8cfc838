package day17_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day17"
)

const sample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const unfortunate = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func TestPart1(t *testing.T) {
	got, err := day17.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 102, got)
}

func TestPart2(t *testing.T) {
	got, err := day17.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 94, got)

	got, err = day17.Part2(puzzle.NewInput(unfortunate))
	require.NoError(t, err)
	assert.Equal(t, 71, got)
}

func TestPart2_Unreachable(t *testing.T) {
	// Too small for the ultra crucible to ever stop at the end.
	_, err := day17.Part2(puzzle.NewInput("11\n11\n"))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestParse_Malformed(t *testing.T) {
	_, err := day17.Part1(puzzle.NewInput("12\n1x\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
