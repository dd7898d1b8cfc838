package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v int) PartFunc {
	return func(*Input) (int, error) { return v, nil }
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Solution{Year: 2023, Day: 2, Part1: constant(2)}))
	require.NoError(t, r.Register(Solution{Year: 2023, Day: 1, Part1: constant(1)}))
	require.NoError(t, r.Register(Solution{Year: 2024, Day: 1, Part1: constant(3)}))

	s, err := r.Lookup(2023, 1)
	require.NoError(t, err)
	assert.Equal(t, "2023/01", s.Key())

	_, err = r.Lookup(2023, 9)
	assert.ErrorIs(t, err, ErrUnknownPuzzle)

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"2023/01", "2023/02", "2024/01"},
		[]string{all[0].Key(), all[1].Key(), all[2].Key()})
	assert.Len(t, r.Year(2023), 2)
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_Rejects(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Register(Solution{Year: 2014, Day: 1, Part1: constant(0)}), ErrBadDate)
	assert.ErrorIs(t, r.Register(Solution{Year: 2023, Day: 26, Part1: constant(0)}), ErrBadDate)
	assert.ErrorIs(t, r.Register(Solution{Year: 2023, Day: 1}), ErrNoAnswer)

	require.NoError(t, r.Register(Solution{Year: 2023, Day: 1, Part1: constant(0)}))
	assert.ErrorIs(t, r.Register(Solution{Year: 2023, Day: 1, Part1: constant(0)}), ErrDuplicatePuzzle)
	assert.Panics(t, func() {
		r.MustRegister(Solution{Year: 2023, Day: 1, Part1: constant(0)})
	})
}
