// Package scramble generates random move sequences for a cube.
package scramble

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/SeamusWaldron/nxncube"
)

// ErrNegativeCount is returned when a scramble length is below zero.
var ErrNegativeCount = errors.New("scramble: negative move count")

// Generator produces random quarter turns over every (kind, layer,
// direction) of a cube size.
type Generator struct {
	size int
	rng  *rand.Rand
}

// New creates a generator for cubes of the given size. The same seed
// always yields the same sequences.
func New(size int, seed int64) (*Generator, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", nxncube.ErrBadShape, size)
	}
	return &Generator{
		size: size,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Moves returns count random moves. No move is the inverse of the one
// before it, so the sequence never wastes a pair on a no-op. A negative
// count yields no moves.
func (g *Generator) Moves(count int) []nxncube.Move {
	if count < 0 {
		return nil
	}
	moves := make([]nxncube.Move, 0, count)
	for len(moves) < count {
		m := g.next()
		if len(moves) > 0 && moves[len(moves)-1].Inverse() == m {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

func (g *Generator) next() nxncube.Move {
	dir := nxncube.CW
	if g.rng.Intn(2) == 0 {
		dir = nxncube.CCW
	}
	return nxncube.Move{
		Kind:  nxncube.Kind(g.rng.Intn(3)),
		Layer: g.rng.Intn(g.size),
		Dir:   dir,
	}
}

// Apply scrambles c with count random moves and returns them.
func (g *Generator) Apply(c *nxncube.Cube, count int) ([]nxncube.Move, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	if c.Size() != g.size {
		return nil, fmt.Errorf("scramble: generator size %d, cube size %d", g.size, c.Size())
	}
	moves := g.Moves(count)
	if err := c.Apply(moves...); err != nil {
		return nil, err
	}
	return moves, nil
}
