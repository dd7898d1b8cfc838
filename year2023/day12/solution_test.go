package day12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day12"
)

const sample = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`

func TestArrangements(t *testing.T) {
	recs, err := day12.Parse(puzzle.NewInput(sample))
	require.NoError(t, err)

	want := []int{1, 4, 1, 1, 4, 10}
	wantUnfolded := []int{1, 16384, 1, 16, 2500, 506250}
	for i, r := range recs {
		assert.Equal(t, want[i], r.Arrangements(), r.Springs)
		assert.Equal(t, wantUnfolded[i], r.Unfold(5).Arrangements(), r.Springs)
	}
}

func TestPart1(t *testing.T) {
	got, err := day12.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestPart2(t *testing.T) {
	got, err := day12.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 525152, got)
}

func TestParse_Malformed(t *testing.T) {
	for _, bad := range []string{"#?x 1", "#?# 1,a", "#?#"} {
		_, err := day12.Parse(puzzle.NewInput(bad))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, bad)
	}
}
