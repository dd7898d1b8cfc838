package day14_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day14"
)

const sample = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

const afterOneCycle = `.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....`

func TestSpin(t *testing.T) {
	g, err := grid.New(puzzle.NewInput(sample).NonEmptyLines())
	require.NoError(t, err)
	assert.Equal(t, afterOneCycle, day14.Spin(g).String())
}

func TestPart1(t *testing.T) {
	got, err := day14.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 136, got)
}

func TestPart2(t *testing.T) {
	got, err := day14.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 64, got)
}
