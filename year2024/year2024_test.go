package year2024_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2024"
)

func TestRegister(t *testing.T) {
	r := puzzle.NewRegistry()
	year2024.Register(r)
	require.Equal(t, 6, r.Len())

	for i, s := range r.Year(2024) {
		assert.Equal(t, i+1, s.Day)
		assert.NotEmpty(t, s.Title)
		assert.NotNil(t, s.Part2, s.Key())
	}
}

func TestRun_FirstDay(t *testing.T) {
	r := puzzle.NewRegistry()
	year2024.Register(r)
	s, err := r.Lookup(2024, 1)
	require.NoError(t, err)

	res := puzzle.Run(context.Background(), s, puzzle.NewInput("3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"))
	require.NoError(t, res.Err())
	assert.Equal(t, 11, res.Part1.Value)
	assert.Equal(t, 31, res.Part2.Value)
}
