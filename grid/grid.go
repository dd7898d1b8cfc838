package grid

import "strings"

// Grid is a rectangular matrix of runes addressed by Point.
type Grid struct {
	Width  int
	Height int
	cells  [][]rune
}

// New builds a Grid from text lines.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(lines))
	for y, line := range lines {
		cells[y] = []rune(line)
	}
	return FromRunes(cells)
}

// FromRunes builds a Grid from a rune matrix, deep-copying it.
func FromRunes(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]rune, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]rune, w)
		copy(cells[y], row)
	}
	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// Filled returns a w×h grid where every cell holds r.
func Filled(w, h int, r rune) *Grid {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(string(r), w))
	}
	return &Grid{Width: w, Height: h, cells: cells}
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the rune at p, or 0 when p is out of bounds.
func (g *Grid) At(p Point) rune {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[p.Y][p.X]
}

// Set stores r at p; out-of-bounds writes are ignored.
func (g *Grid) Set(p Point, r rune) {
	if g.InBounds(p) {
		g.cells[p.Y][p.X] = r
	}
}

// Wrap maps any point onto the grid by tiling it infinitely.
func (g *Grid) Wrap(p Point) Point {
	x, y := p.X%g.Width, p.Y%g.Height
	if x < 0 {
		x += g.Width
	}
	if y < 0 {
		y += g.Height
	}
	return Point{x, y}
}

// Find returns the first cell (row-major) holding r.
func (g *Grid) Find(r rune) (Point, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c == r {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every cell (row-major) for which match returns true.
func (g *Grid) FindAll(match func(rune) bool) []Point {
	var out []Point
	for y, row := range g.cells {
		for x, c := range row {
			if match(c) {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Neighbors returns the in-bounds neighbors of p for the given connectivity.
func (g *Grid) Neighbors(p Point, conn Connectivity) []Point {
	offs := conn.Offsets()
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		q := p.Add(d)
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Row returns a copy of row y as a string.
func (g *Grid) Row(y int) string { return string(g.cells[y]) }

// Column returns column x as a string, top to bottom.
func (g *Grid) Column(x int) string {
	col := make([]rune, g.Height)
	for y := range col {
		col[y] = g.cells[y][x]
	}
	return string(col)
}

// Rows returns every row as a string.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	for y := range out {
		out[y] = g.Row(y)
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c, _ := FromRunes(g.cells)
	return c
}

// Transpose mirrors the grid over its main diagonal.
func (g *Grid) Transpose() *Grid {
	out := make([][]rune, g.Width)
	for x := range out {
		out[x] = make([]rune, g.Height)
		for y := 0; y < g.Height; y++ {
			out[x][y] = g.cells[y][x]
		}
	}
	return &Grid{Width: g.Height, Height: g.Width, cells: out}
}

// RotateClockwise turns the grid 90° to the right.
func (g *Grid) RotateClockwise() *Grid {
	out := make([][]rune, g.Width)
	for x := range out {
		out[x] = make([]rune, g.Height)
		for y := 0; y < g.Height; y++ {
			out[x][g.Height-1-y] = g.cells[y][x]
		}
	}
	return &Grid{Width: g.Height, Height: g.Width, cells: out}
}

// RotateCounterClockwise turns the grid 90° to the left.
func (g *Grid) RotateCounterClockwise() *Grid {
	out := make([][]rune, g.Width)
	for x := range out {
		out[x] = make([]rune, g.Height)
	}
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			out[g.Width-1-x][y] = g.cells[y][x]
		}
	}
	return &Grid{Width: g.Height, Height: g.Width, cells: out}
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
