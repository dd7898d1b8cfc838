package day10_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day10"
)

const square = `.....
.S-7.
.|.|.
.L-J.
.....
`

const complexLoop = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

const enclosed = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

const larger = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

func TestPart1(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want int
	}{"square": {square, 4}, "complex": {complexLoop, 8}} {
		got, err := day10.Part1(puzzle.NewInput(tc.in))
		require.NoError(t, err, name)
		assert.Equal(t, tc.want, got, name)
	}
}

func TestPart2(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want int
	}{"enclosed": {enclosed, 4}, "larger": {larger, 8}, "square": {square, 1}} {
		got, err := day10.Part2(puzzle.NewInput(tc.in))
		require.NoError(t, err, name)
		assert.Equal(t, tc.want, got, name)
	}
}

func TestLoop_Malformed(t *testing.T) {
	for _, bad := range []string{".....\n.....\n", "S-.\n...\n", ".....\n.S-7.\n.|.|.\n.L-..\n"} {
		_, err := day10.Loop(puzzle.NewInput(bad))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, bad)
	}
}
