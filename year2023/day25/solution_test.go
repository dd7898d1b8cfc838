package day25_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day25"
)

const sample = `jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr
`

func TestSplit(t *testing.T) {
	g, err := day25.Parse(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 15, g.Order())
	assert.Equal(t, 33, g.Size())

	a, b, err := day25.Split(context.Background(), g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{6, 9}, []int{a, b})
}

func TestPart1(t *testing.T) {
	got, err := day25.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 54, got)
}

func TestPart1_NoCut(t *testing.T) {
	_, err := day25.Part1(puzzle.NewInput("a: b\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestParse_Malformed(t *testing.T) {
	_, err := day25.Parse(puzzle.NewInput("abc def\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestSolution_SinglePart(t *testing.T) {
	assert.Nil(t, day25.Solution().Part2)
}
