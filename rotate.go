package nxncube

import "fmt"

// Direction is the sense of a quarter turn.
type Direction int

const (
	CW  Direction = 1  // Clockwise quarter turn
	CCW Direction = -1 // Counter-clockwise quarter turn
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	return -d
}

func (d Direction) valid() bool {
	return d == CW || d == CCW
}

// strip addresses the k-th facelet of one face's share of a belt at a
// given layer. Walking k from 0 to N-1 on consecutive strips of a belt
// visits facelets that trade places under a quarter turn.
type strip struct {
	face FaceID
	at   func(n, layer, k int) (row, col int)
}

// belt describes one move operator: four strips that cycle strips[i] into
// strips[i+1] on a CW turn, and the two faces that turn in-plane when the
// layer is at a boundary.
type belt struct {
	strips [4]strip

	first   FaceID // turns when layer == 0
	firstCW bool   // sense of first's turn on a CW move
	last    FaceID // turns when layer == N-1
	lastCW  bool   // sense of last's turn on a CW move
}

func sameRow(n, layer, k int) (int, int) { return layer, k }
func sameCol(n, layer, k int) (int, int) { return k, layer }

var (
	// Horizontal layers. CW carries Left onto Front.
	rowBelt = belt{
		strips: [4]strip{
			{Left, sameRow},
			{Front, sameRow},
			{Right, sameRow},
			{Back, sameRow},
		},
		first: Top, firstCW: false,
		last: Bottom, lastCW: true,
	}

	// Vertical layers parallel to Left/Right. CW raises Front onto Top.
	columnBelt = belt{
		strips: [4]strip{
			{Front, sameCol},
			{Top, sameCol},
			{Back, func(n, layer, k int) (int, int) { return n - 1 - k, n - 1 - layer }},
			{Bottom, sameCol},
		},
		first: Left, firstCW: false,
		last: Right, lastCW: true,
	}

	// Slices parallel to Front/Back, layer 0 at the Front.
	// CW is clockwise as seen from the Front.
	sliceBelt = belt{
		strips: [4]strip{
			{Top, func(n, layer, k int) (int, int) { return n - 1 - layer, k }},
			{Right, sameCol},
			{Bottom, func(n, layer, k int) (int, int) { return layer, n - 1 - k }},
			{Left, func(n, layer, k int) (int, int) { return n - 1 - k, n - 1 - layer }},
		},
		first: Front, firstCW: true,
		last: Back, lastCW: false,
	}
)

// RotateRow turns horizontal layer row. CW moves the row of Left onto Front,
// Front onto Right, Right onto Back and Back onto Left. Row 0 also turns Top,
// row N-1 also turns Bottom.
func (c *Cube) RotateRow(row int, dir Direction) error {
	return c.turn(&rowBelt, row, dir)
}

// RotateColumn turns vertical layer col. CW moves the column of Front onto
// Top, Top onto Back, Back onto Bottom and Bottom onto Front. Column 0 also
// turns Left, column N-1 also turns Right.
func (c *Cube) RotateColumn(col int, dir Direction) error {
	return c.turn(&columnBelt, col, dir)
}

// RotateFace turns the slice layer counted from the Front. CW is clockwise
// seen from the Front: Top onto Right, Right onto Bottom, Bottom onto Left,
// Left onto Top. Layer 0 also turns Front, layer N-1 also turns Back in the
// opposite sense.
func (c *Cube) RotateFace(layer int, dir Direction) error {
	return c.turn(&sliceBelt, layer, dir)
}

// turn applies one quarter turn of b. The next state is built from an
// untouched copy and swapped in whole; on error the cube is unchanged.
func (c *Cube) turn(b *belt, layer int, dir Direction) error {
	if layer < 0 || layer >= c.size {
		return fmt.Errorf("%w: layer %d, want 0..%d", ErrLayerOutOfRange, layer, c.size-1)
	}
	if !dir.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	n := c.size
	var next [6]Grid
	for _, f := range Faces {
		next[f] = c.faces[f].Clone()
	}

	for i := 0; i < 4; i++ {
		src, dst := b.strips[i], b.strips[(i+1)%4]
		if dir == CCW {
			src, dst = dst, src
		}
		for k := 0; k < n; k++ {
			sr, sc := src.at(n, layer, k)
			dr, dc := dst.at(n, layer, k)
			next[dst.face][dr][dc] = c.faces[src.face][sr][sc]
		}
	}

	// Both can fire when N == 1.
	if layer == 0 {
		next[b.first] = turnGrid(c.faces[b.first], b.firstCW == (dir == CW))
	}
	if layer == n-1 {
		next[b.last] = turnGrid(c.faces[b.last], b.lastCW == (dir == CW))
	}

	c.faces = next
	return nil
}

// turnGrid returns g turned a quarter in its own plane, clockwise when cw is
// set. The input is not modified.
func turnGrid(g Grid, cw bool) Grid {
	n := len(g)
	out := newGrid(n, 0)
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			if cw {
				out[r][col] = g[n-1-col][r]
			} else {
				out[r][col] = g[col][n-1-r]
			}
		}
	}
	return out
}
