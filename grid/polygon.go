package grid

import "github.com/katalvlaran/advent/mathx"

// ShoelaceArea returns twice the area enclosed by the closed polygon whose
// vertices are given in order (either orientation). Keeping the doubled
// value makes the result exact for integer coordinates.
//
// Complexity: O(n).
func ShoelaceArea(vertices []Point) int {
	sum := 0
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return mathx.Abs(sum)
}

// Perimeter returns the number of unit steps along the closed polygon,
// assuming consecutive vertices share a row or a column.
func Perimeter(vertices []Point) int {
	total := 0
	for i, p := range vertices {
		total += p.Manhattan(vertices[(i+1)%len(vertices)])
	}
	return total
}

// InteriorPoints applies Pick's theorem, A = i + b/2 - 1, to count the
// lattice points strictly inside a simple polygon given twice its area and
// the number of lattice points on its boundary.
func InteriorPoints(area2, boundary int) int {
	return (area2-boundary)/2 + 1
}

// TotalPoints counts interior plus boundary lattice points of the polygon.
func TotalPoints(vertices []Point) int {
	b := Perimeter(vertices)
	return InteriorPoints(ShoelaceArea(vertices), b) + b
}
