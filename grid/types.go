package grid

import (
	"fmt"

	"github.com/katalvlaran/advent/mathx"
)

// Point is a cell coordinate: X is the column, Y is the row (growing down).
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Move returns the point n steps away in direction d.
func (p Point) Move(d Direction, n int) Point { return p.Add(d.Delta().Scale(n)) }

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return mathx.Abs(p.X-q.X) + mathx.Abs(p.Y-q.Y)
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is one of the four cardinal directions, ordered clockwise.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the cardinal directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var deltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit offset of d.
func (d Direction) Delta() Point { return deltas[d&3] }

// TurnRight rotates d clockwise by 90°.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft rotates d counter-clockwise by 90°.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

func (d Direction) String() string {
	return [4]string{"U", "R", "D", "L"}[d&3]
}

// ParseDirection accepts U/D/L/R, N/E/S/W and the arrows ^ > v <.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'U', 'N', '^':
		return Up, nil
	case 'R', 'E', '>':
		return Right, nil
	case 'D', 'S', 'v':
		return Down, nil
	case 'L', 'W', '<':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, r)
}

// Connectivity selects which neighbors a cell has.
type Connectivity int

const (
	// Conn4 links orthogonal neighbors (N, E, S, W).
	Conn4 Connectivity = 4
	// Conn8 adds the four diagonals.
	Conn8 Connectivity = 8
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for c; anything but Conn8 means Conn4.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}
