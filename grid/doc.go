// Package grid treats puzzle text as a rectangular 2D grid of runes and
// provides the geometry that grid puzzles share.
//
// What:
//
//   - Point and Direction: integer coordinates with X growing right and Y
//     growing down, plus the four cardinal directions and turning helpers.
//   - Grid: a deep-copied rectangular rune matrix with bounds checks,
//     neighbor iteration (Conn4 or Conn8), searching, rotation and transpose.
//   - ConnectedComponents: flood-fill groups of cells matching a predicate.
//   - ShoelaceArea and InteriorPoints: polygon area from vertices and lattice
//     point counting through Pick's theorem.
//
// Complexity:
//
//   - New, Clone, Transpose, Rotate*: O(W×H) time and memory.
//   - ConnectedComponents: O(W×H×d), d = 4 or 8.
//   - ShoelaceArea: O(n) for n vertices.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
