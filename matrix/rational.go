// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// NewRat returns n/1 as a *big.Rat.
func NewRat(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// RatRow converts integers to a row of *big.Rat.
func RatRow(vals ...int64) []*big.Rat {
	row := make([]*big.Rat, len(vals))
	for i, v := range vals {
		row[i] = NewRat(v)
	}
	return row
}

// SolveRational solves a·x = b exactly by Gauss–Jordan elimination.
//
// a has r rows and c columns (r >= c); b has r entries. Rows beyond the
// rank must reduce to 0 = 0, otherwise ErrInconsistent is returned.
//
// Steps:
//  1. Validate shapes and build the augmented matrix [a | b].
//  2. For each column pick the first row with a non-zero pivot at or below
//     the current row, swap it up, normalize, and eliminate the column from
//     every other row.
//  3. Check leftover rows for consistency and read x from the last column.
func SolveRational(a [][]*big.Rat, b []*big.Rat) ([]*big.Rat, error) {
	// 1) Validate
	rows := len(a)
	if rows == 0 {
		return nil, ErrEmpty
	}
	cols := len(a[0])
	if cols == 0 {
		return nil, ErrEmpty
	}
	if len(b) != rows {
		return nil, fmt.Errorf("%w: %d rows but %d right-hand values", ErrDimensionMismatch, rows, len(b))
	}
	if rows < cols {
		return nil, fmt.Errorf("%w: %d equations for %d unknowns", ErrSingular, rows, cols)
	}
	aug := make([][]*big.Rat, rows)
	for i, row := range a {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), cols)
		}
		aug[i] = make([]*big.Rat, cols+1)
		for j, v := range row {
			aug[i][j] = new(big.Rat).Set(v)
		}
		aug[i][cols] = new(big.Rat).Set(b[i])
	}

	// 2) Eliminate
	tmp := new(big.Rat)
	for col := 0; col < cols; col++ {
		pivot := -1
		for r := col; r < rows; r++ {
			if aug[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, col)
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		inv := new(big.Rat).Inv(aug[col][col])
		for j := col; j <= cols; j++ {
			aug[col][j].Mul(aug[col][j], inv)
		}
		for r := 0; r < rows; r++ {
			if r == col || aug[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			for j := col; j <= cols; j++ {
				tmp.Mul(factor, aug[col][j])
				aug[r][j].Sub(aug[r][j], tmp)
			}
		}
	}

	// 3) Consistency and read-out
	for r := cols; r < rows; r++ {
		if aug[r][cols].Sign() != 0 {
			return nil, fmt.Errorf("%w: row %d reduces to 0 = %s", ErrInconsistent, r, aug[r][cols].RatString())
		}
	}
	x := make([]*big.Rat, cols)
	for i := range x {
		x[i] = aug[i][cols]
	}
	return x, nil
}
