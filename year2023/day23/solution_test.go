package day23_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day23"
)

const sample = `#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
`

func TestPart1(t *testing.T) {
	got, err := day23.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 94, got)
}

func TestPart2(t *testing.T) {
	got, err := day23.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 154, got)
}

func TestCompress(t *testing.T) {
	tr, err := day23.Parse(puzzle.NewInput(sample))
	require.NoError(t, err)
	cg, err := tr.Compress(false)
	require.NoError(t, err)
	// start, end and seven forks
	assert.Equal(t, 9, cg.Order())

	icy, err := tr.Compress(true)
	require.NoError(t, err)
	assert.Equal(t, 9, icy.Order())
	assert.Less(t, icy.Size(), cg.Size(), "slopes make corridors one-way")
}

func TestParse_Malformed(t *testing.T) {
	_, err := day23.Parse(puzzle.NewInput("###\n#.#\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
