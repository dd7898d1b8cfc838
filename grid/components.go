package grid

// ConnectedComponents finds all contiguous regions of cells whose rune
// satisfies match, using conn connectivity.
// Components are returned in row-major order of their first cell; cells in a
// component are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(match func(rune) bool, conn Connectivity) [][]Point {
	seen := make([]bool, g.Width*g.Height)
	index := func(p Point) int { return p.Y*g.Width + p.X }
	var comps [][]Point

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p0 := Point{x, y}
			if !match(g.cells[y][x]) || seen[index(p0)] {
				continue
			}
			// BFS to collect component
			queue := []Point{p0}
			seen[index(p0)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, q := range g.Neighbors(queue[qi], conn) {
					if seen[index(q)] || !match(g.cells[q.Y][q.X]) {
						continue
					}
					seen[index(q)] = true
					queue = append(queue, q)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
