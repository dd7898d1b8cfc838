// Package matrix_test contains unit tests for exact rational elimination.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/matrix"
)

func ratStrings(xs []*big.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.RatString()
	}
	return out
}

func TestSolveRational_Square(t *testing.T) {
	// 2x + y = 5; x - y = 1  =>  x = 2, y = 1
	a := [][]*big.Rat{matrix.RatRow(2, 1), matrix.RatRow(1, -1)}
	b := matrix.RatRow(5, 1)

	x, err := matrix.SolveRational(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ratStrings(x))

	// inputs untouched
	assert.Equal(t, "2", a[0][0].RatString())
	assert.Equal(t, "5", b[0].RatString())
}

func TestSolveRational_Fractions(t *testing.T) {
	// 3x = 1; needs a row swap first: [0 1 | 2], [3 0 | 1]
	a := [][]*big.Rat{matrix.RatRow(0, 1), matrix.RatRow(3, 0)}
	x, err := matrix.SolveRational(a, matrix.RatRow(2, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1/3", "2"}, ratStrings(x))
}

func TestSolveRational_Overdetermined(t *testing.T) {
	// x + y = 3; x - y = 1; 2x + y = 5 (consistent)
	a := [][]*big.Rat{matrix.RatRow(1, 1), matrix.RatRow(1, -1), matrix.RatRow(2, 1)}
	x, err := matrix.SolveRational(a, matrix.RatRow(3, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ratStrings(x))

	_, err = matrix.SolveRational(a, matrix.RatRow(3, 1, 6))
	assert.ErrorIs(t, err, matrix.ErrInconsistent)
}

func TestSolveRational_Large(t *testing.T) {
	// Coefficients beyond float64 precision.
	big1 := int64(1) << 53
	a := [][]*big.Rat{matrix.RatRow(big1, 1), matrix.RatRow(1, 0)}
	x, err := matrix.SolveRational(a, matrix.RatRow(big1*3+7, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7"}, ratStrings(x))
}

func TestSolveRational_Errors(t *testing.T) {
	cases := []struct {
		name string
		a    [][]*big.Rat
		b    []*big.Rat
		want error
	}{
		{"empty", nil, nil, matrix.ErrEmpty},
		{"rhs length", [][]*big.Rat{matrix.RatRow(1)}, matrix.RatRow(1, 2), matrix.ErrDimensionMismatch},
		{"ragged", [][]*big.Rat{matrix.RatRow(1, 2), matrix.RatRow(1)}, matrix.RatRow(1, 2), matrix.ErrDimensionMismatch},
		{"underdetermined", [][]*big.Rat{matrix.RatRow(1, 2)}, matrix.RatRow(1), matrix.ErrSingular},
		{"singular", [][]*big.Rat{matrix.RatRow(1, 2), matrix.RatRow(2, 4)}, matrix.RatRow(1, 2), matrix.ErrSingular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.SolveRational(tc.a, tc.b)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
