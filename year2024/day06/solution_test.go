package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2024/day06"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestParts(t *testing.T) {
	in := puzzle.NewInput(sample)

	p1, err := day06.Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 41, p1)

	p2, err := day06.Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 6, p2)
}

func TestPatrol_KnownLoop(t *testing.T) {
	l, err := day06.Parse(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(4, 6), l.Start)

	// first example obstruction: next to the guard's start
	_, loops := l.Patrol(grid.Pt(3, 6))
	assert.True(t, loops)

	route, loops := l.Patrol(grid.Pt(0, 0))
	assert.False(t, loops)
	assert.Len(t, route, 41)
}

func TestParse_Guards(t *testing.T) {
	_, err := day06.Parse(puzzle.NewInput("...\n...\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = day06.Parse(puzzle.NewInput("^.^\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
