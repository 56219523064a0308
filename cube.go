package nxncube

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Top face when solved
	Yellow Color = 1 // Right face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Bottom face when solved
	Red    Color = 4 // Back face when solved
	Orange Color = 5 // Left face when solved
)

// numColors is the size of the color alphabet.
const numColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Valid reports whether c belongs to the color alphabet.
func (c Color) Valid() bool {
	return c < numColors
}

// ParseColor parses a one-letter color code (case-insensitive).
func ParseColor(r rune) (Color, error) {
	switch r {
	case 'W', 'w':
		return White, nil
	case 'Y', 'y':
		return Yellow, nil
	case 'G', 'g':
		return Green, nil
	case 'B', 'b':
		return Blue, nil
	case 'R', 'r':
		return Red, nil
	case 'O', 'o':
		return Orange, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadColor, r)
	}
}

// FaceID identifies one of the six faces.
type FaceID int

const (
	Top    FaceID = 0
	Left   FaceID = 1
	Front  FaceID = 2
	Right  FaceID = 3
	Back   FaceID = 4
	Bottom FaceID = 5
)

// Faces lists every face in storage order.
var Faces = [6]FaceID{Top, Left, Front, Right, Back, Bottom}

func (f FaceID) String() string {
	switch f {
	case Top:
		return "U"
	case Left:
		return "L"
	case Front:
		return "F"
	case Right:
		return "R"
	case Back:
		return "B"
	case Bottom:
		return "D"
	default:
		return "?"
	}
}

func (f FaceID) valid() bool {
	return f >= Top && f <= Bottom
}

// solvedColor returns the color of a face when solved.
func solvedColor(f FaceID) Color {
	switch f {
	case Top:
		return White
	case Left:
		return Orange
	case Front:
		return Green
	case Right:
		return Yellow
	case Back:
		return Red
	case Bottom:
		return Blue
	default:
		return White
	}
}

// Grid is an N×N face, indexed [row][col]. Every face is addressed as seen
// from outside the cube:
//
//   - Left, Front, Right, Back: row 0 borders Top, columns run
//     Left→Front→Right→Back around the belt.
//   - Top: row N-1 borders Front, column 0 borders Left.
//   - Bottom: row 0 borders Front, column 0 borders Left.
type Grid [][]Color

func newGrid(n int, fill Color) Grid {
	g := make(Grid, n)
	for r := range g {
		g[r] = make([]Color, n)
		for c := range g[r] {
			g[r][c] = fill
		}
	}
	return g
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	clone := make(Grid, len(g))
	for r := range g {
		clone[r] = append([]Color(nil), g[r]...)
	}
	return clone
}

// Equal reports whether two grids have the same shape and contents.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Uniform reports whether every facelet of the grid has the same color.
func (g Grid) Uniform() bool {
	if len(g) == 0 || len(g[0]) == 0 {
		return true
	}
	first := g[0][0]
	for _, row := range g {
		for _, c := range row {
			if c != first {
				return false
			}
		}
	}
	return true
}

// Cube is an N×N×N Rubik's cube state.
//
// A Cube is not safe for concurrent use. Run one Cube per goroutine.
type Cube struct {
	size  int
	faces [6]Grid
}

// New creates a solved cube of edge length size with the canonical colors:
// White top, Orange left, Green front, Yellow right, Red back, Blue bottom.
func New(size int) (*Cube, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d, must be at least 1", ErrBadShape, size)
	}
	c := &Cube{size: size}
	c.fillSolved()
	return c, nil
}

// MustNew is like New but panics on an invalid size.
// It is meant for tests and fixed-size setups.
func MustNew(size int) *Cube {
	c, err := New(size)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Cube) fillSolved() {
	for _, f := range Faces {
		c.faces[f] = newGrid(c.size, solvedColor(f))
	}
}

// FromFaces builds a cube from six externally supplied grids, given in
// FaceID order. The grids are copied.
func FromFaces(faces [6]Grid) (*Cube, error) {
	n := len(faces[Top])
	if n < 1 {
		return nil, fmt.Errorf("%w: face %s is empty", ErrBadShape, Top)
	}

	c := &Cube{size: n}
	for _, f := range Faces {
		g := faces[f]
		if len(g) != n {
			return nil, fmt.Errorf("%w: face %s has %d rows, want %d", ErrBadShape, f, len(g), n)
		}
		for r, row := range g {
			if len(row) != n {
				return nil, fmt.Errorf("%w: face %s row %d has %d columns, want %d", ErrBadShape, f, r, len(row), n)
			}
			for col, color := range row {
				if !color.Valid() {
					return nil, fmt.Errorf("%w: face %s (%d,%d) has value %d", ErrBadColor, f, r, col, color)
				}
			}
		}
		c.faces[f] = g.Clone()
	}
	return c, nil
}

// Size returns the edge length N.
func (c *Cube) Size() int {
	return c.size
}

// Face returns a copy of the current grid of face f, or nil for an unknown
// face.
func (c *Cube) Face(f FaceID) Grid {
	if !f.valid() {
		return nil
	}
	return c.faces[f].Clone()
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{size: c.size}
	for _, f := range Faces {
		clone.faces[f] = c.faces[f].Clone()
	}
	return clone
}

// Reset returns the cube to the solved state, keeping its size.
func (c *Cube) Reset() {
	c.fillSolved()
}

// IsSolved returns true if every face is a single color.
// Faces need not carry distinct colors.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		if !c.faces[f].Uniform() {
			return false
		}
	}
	return true
}

// Equal reports whether two cubes have the same size and facelets.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.size != other.size {
		return false
	}
	for _, f := range Faces {
		if !c.faces[f].Equal(other.faces[f]) {
			return false
		}
	}
	return true
}

// ColorCounts returns how many facelets of each color the cube holds.
func (c *Cube) ColorCounts() [numColors]int {
	var counts [numColors]int
	for _, f := range Faces {
		for _, row := range c.faces[f] {
			for _, color := range row {
				counts[color]++
			}
		}
	}
	return counts
}

// String returns the faces one per line, rows separated by spaces.
//
//	U: WW WW
//	L: OO OO
//	...
func (c *Cube) String() string {
	var sb strings.Builder
	for _, f := range Faces {
		sb.WriteString(f.String())
		sb.WriteString(":")
		for _, row := range c.faces[f] {
			sb.WriteByte(' ')
			for _, color := range row {
				sb.WriteString(color.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Size: %d Solved: %v", c.size, c.IsSolved())
}
