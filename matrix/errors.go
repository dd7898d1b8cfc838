// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// such as a ragged coefficient matrix or a right-hand side of wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular indicates that the system has no unique solution
	// (rank below the number of unknowns).
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrInconsistent indicates an over-determined system with no solution.
	ErrInconsistent = errors.New("matrix: inconsistent system")

	// ErrEmpty indicates an empty system.
	ErrEmpty = errors.New("matrix: empty system")
)
