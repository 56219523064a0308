package nxncube

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects one of the three move operators.
type Kind int

const (
	Row    Kind = iota // RotateRow, notation H
	Column             // RotateColumn, notation V
	Slice              // RotateFace, notation S
)

func (k Kind) String() string {
	switch k {
	case Row:
		return "H"
	case Column:
		return "V"
	case Slice:
		return "S"
	default:
		return "?"
	}
}

// Move is a single quarter turn of one layer.
type Move struct {
	Kind  Kind
	Layer int
	Dir   Direction
}

// Notation returns the layer notation for the move.
// Examples: H0, H0', V2, S1'
func (m Move) Notation() string {
	s := m.Kind.String() + strconv.Itoa(m.Layer)
	if m.Dir == CCW {
		s += "'"
	}
	return s
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	inv.Dir = m.Dir.Inverse()
	return inv
}

// Apply applies moves in order. It stops at the first move that fails
// validation and returns its error; earlier moves stay applied and the
// failing move leaves the cube untouched.
func (c *Cube) Apply(moves ...Move) error {
	for i, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i, m, err)
		}
	}
	return nil
}

// ApplyMove applies a single move.
func (c *Cube) ApplyMove(m Move) error {
	switch m.Kind {
	case Row:
		return c.RotateRow(m.Layer, m.Dir)
	case Column:
		return c.RotateColumn(m.Layer, m.Dir)
	case Slice:
		return c.RotateFace(m.Layer, m.Dir)
	default:
		return fmt.Errorf("%w: unknown move kind %d", ErrInvalidNotation, int(m.Kind))
	}
}

// ApplyNotation parses s against the cube's size and applies it.
// Nothing is applied if s does not parse or names a layer the cube does
// not have.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s, c.size)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// ParseMove parses one quarter-turn token for a cube of the given size.
//
// Layer tokens are a kind letter and a layer index: H0, V2', S1.
// Outer-face tokens name the face turned clockwise as seen from outside:
// U, D, L, R, F, B, each with an optional ' for counter-clockwise.
// Half turns (R2) are only accepted by ParseMoves.
func ParseMove(s string, size int) (Move, error) {
	m, count, err := parseToken(s, size)
	if err != nil {
		return Move{}, err
	}
	if count != 1 {
		return Move{}, fmt.Errorf("%w: %q is a half turn", ErrInvalidNotation, s)
	}
	return m, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U' H1 V0'"
// A half turn such as U2 expands to two quarter turns.
func ParseMoves(s string, size int) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		m, count, err := parseToken(part, size)
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			moves = append(moves, m)
		}
	}

	return moves, nil
}

// parseToken returns the move a token names and how many times to apply it.
func parseToken(s string, size int) (Move, int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, 0, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	// Extract turn suffix. Half turns exist only for outer-face tokens.
	outer := strings.ContainsRune("UDLRFB", rune(s[0]))
	dir, count := CW, 1
	body := s
	switch {
	case outer && (strings.HasSuffix(s, "2'") || strings.HasSuffix(s, "2`")):
		body, count = s[:len(s)-2], 2
	case strings.HasSuffix(s, "'"), strings.HasSuffix(s, "`"):
		body, dir = s[:len(s)-1], CCW
	case outer && strings.HasSuffix(s, "2"):
		body, count = s[:len(s)-1], 2
	}
	if len(body) == 0 {
		return Move{}, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	var m Move
	switch body[0] {
	case 'H', 'V', 'S':
		if len(body) < 2 || body[1] < '0' || body[1] > '9' {
			return Move{}, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		layer, err := strconv.Atoi(body[1:])
		if err != nil {
			return Move{}, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		if layer >= size {
			return Move{}, 0, fmt.Errorf("%w: %q on a cube of size %d", ErrLayerOutOfRange, s, size)
		}
		m = Move{Kind: kindFromLetter(body[0]), Layer: layer, Dir: dir}
	default:
		if len(body) != 1 {
			return Move{}, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		fm, ok := outerMove(body[0], size)
		if !ok {
			return Move{}, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		m = fm
		if dir == CCW {
			m = m.Inverse()
		}
	}

	return m, count, nil
}

func kindFromLetter(b byte) Kind {
	switch b {
	case 'H':
		return Row
	case 'V':
		return Column
	default:
		return Slice
	}
}

// outerMove maps a face letter to the move that turns that face clockwise
// as seen from outside the cube.
func outerMove(face byte, size int) (Move, bool) {
	last := size - 1
	switch face {
	case 'U':
		return Move{Kind: Row, Layer: 0, Dir: CCW}, true
	case 'D':
		return Move{Kind: Row, Layer: last, Dir: CW}, true
	case 'L':
		return Move{Kind: Column, Layer: 0, Dir: CCW}, true
	case 'R':
		return Move{Kind: Column, Layer: last, Dir: CW}, true
	case 'F':
		return Move{Kind: Slice, Layer: 0, Dir: CW}, true
	case 'B':
		return Move{Kind: Slice, Layer: last, Dir: CCW}, true
	default:
		return Move{}, false
	}
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseSequence returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseSequence(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
