package day19_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day19"
)

const sample = `px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
`

func TestPart1(t *testing.T) {
	got, err := day19.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 19114, got)
}

func TestPart2(t *testing.T) {
	got, err := day19.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 167409079868000, got)
}

func TestPart2_AcceptAll(t *testing.T) {
	got, err := day19.Part2(puzzle.NewInput("in{A}\n\n{x=1,m=1,a=1,s=1}\n"))
	require.NoError(t, err)
	assert.Equal(t, 4000*4000*4000*4000, got)
}

func TestParse_Malformed(t *testing.T) {
	for _, bad := range []string{
		"in{A}\n",
		"in{x<:A}\n\n{x=1,m=1,a=1,s=1}\n",
		"px{A}\n\n{x=1,m=1,a=1,s=1}\n",
		"in{A}\n\n{x=1,m=1}\n",
	} {
		_, err := day19.Parse(puzzle.NewInput(bad))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, bad)
	}
}

func TestAccepted_Loop(t *testing.T) {
	_, err := day19.Part1(puzzle.NewInput("in{a}\na{in}\n\n{x=1,m=1,a=1,s=1}\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
