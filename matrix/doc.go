// SPDX-License-Identifier: MIT
// Package matrix provides exact linear algebra over rational numbers.
//
// Purpose:
//   - Solve linear systems whose coefficients are large integers (hailstone
//     positions around 1e14) where float64 elimination loses the answer.
//
// Contracts:
//   - Inputs are never mutated; SolveRational works on a private copy.
//   - Systems may be over-determined as long as they are consistent.
//
// Complexity:
//   - Gauss–Jordan elimination: O(r · c²) big.Rat operations for an r×c system.
package matrix
