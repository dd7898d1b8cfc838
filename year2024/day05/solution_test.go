package day05_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2024/day05"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestParts(t *testing.T) {
	in := puzzle.NewInput(sample)

	p1, err := day05.Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 143, p1)

	p2, err := day05.Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 123, p2)
}

func TestReorder(t *testing.T) {
	q, err := day05.Parse(puzzle.NewInput(sample))
	require.NoError(t, err)
	require.Len(t, q.Updates, 6)

	tests := []struct {
		update []string
		want   []string
	}{
		{[]string{"75", "97", "47", "61", "53"}, []string{"97", "75", "47", "61", "53"}},
		{[]string{"61", "13", "29"}, []string{"61", "29", "13"}},
		{[]string{"97", "13", "75", "29", "47"}, []string{"97", "75", "47", "29", "13"}},
	}
	for _, tc := range tests {
		assert.False(t, q.Ordered(tc.update))
		got, err := q.Reorder(tc.update)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.True(t, q.Ordered(got))
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{
		"1|2\n",
		"1-2\n\n1,2\n",
		"1|2\n\n1,x\n",
	} {
		_, err := day05.Parse(puzzle.NewInput(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
