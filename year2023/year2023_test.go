package year2023_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023"
)

func TestRegister(t *testing.T) {
	r := puzzle.NewRegistry()
	year2023.Register(r)
	require.Equal(t, puzzle.LastDay, r.Len())

	for i, s := range r.Year(2023) {
		assert.Equal(t, i+1, s.Day)
		assert.NotEmpty(t, s.Title, s.Key())
		assert.NotNil(t, s.Part1, s.Key())
		if s.Day == puzzle.LastDay {
			assert.Nil(t, s.Part2, "the last day has a single part")
		} else {
			assert.NotNil(t, s.Part2, s.Key())
		}
	}
}

func TestRegister_Twice(t *testing.T) {
	r := puzzle.NewRegistry()
	year2023.Register(r)
	assert.Panics(t, func() { year2023.Register(r) })
}
