package day05_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day05"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestPart1(t *testing.T) {
	got, err := day05.Part1(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 35, got)
}

func TestPart2(t *testing.T) {
	got, err := day05.Part2(puzzle.NewInput(sample))
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestStage_MapSpans(t *testing.T) {
	st := day05.Stage{Rules: []day05.Rule{{Dst: 100, Src: 10, Len: 5}, {Dst: 0, Src: 20, Len: 5}}}
	got := st.MapSpans([]day05.Span{{Lo: 5, Hi: 30}})
	want := []day05.Span{{5, 10}, {100, 105}, {15, 20}, {0, 5}, {25, 30}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MapSpans mismatch (-want +got):\n%s", diff)
	}
}

func TestPart2_OddSeeds(t *testing.T) {
	_, err := day05.Part2(puzzle.NewInput("seeds: 1 2 3\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
