// Package notation rewrites and describes move sequences.
package notation

import (
	"github.com/SeamusWaldron/nxncube"
)

// layerTurn is the net quarter turns of one layer, in [0, 4).
type layerTurn struct {
	kind  nxncube.Kind
	layer int
	net   int
}

// Simplify returns a sequence with the same effect as moves, folding turns
// of the same layer together. Parallel layers commute, so a move merges with the
// latest move on the same layer as long as only moves of the same kind
// lie between them. Three quarter turns become one the other way; a half
// turn stays as two clockwise quarter turns.
func Simplify(moves []nxncube.Move) []nxncube.Move {
	var stack []layerTurn

	for _, m := range moves {
		merged := false
		for i := len(stack) - 1; i >= 0 && stack[i].kind == m.Kind; i-- {
			if stack[i].layer != m.Layer {
				continue
			}
			stack[i].net = NormalizeTurn(stack[i].net + int(m.Dir))
			if stack[i].net == 0 {
				stack = append(stack[:i], stack[i+1:]...)
			}
			merged = true
			break
		}
		if !merged {
			stack = append(stack, layerTurn{kind: m.Kind, layer: m.Layer, net: NormalizeTurn(int(m.Dir))})
		}
	}

	out := make([]nxncube.Move, 0, len(stack))
	for _, lt := range stack {
		m := nxncube.Move{Kind: lt.kind, Layer: lt.layer, Dir: nxncube.CW}
		switch lt.net {
		case 1:
			out = append(out, m)
		case 2:
			out = append(out, m, m)
		case 3:
			m.Dir = nxncube.CCW
			out = append(out, m)
		}
	}
	return out
}

// NormalizeTurn reduces a count of clockwise quarter turns to [0, 4).
// -1 -> 3, 4 -> 0, 5 -> 1
func NormalizeTurn(turn int) int {
	return ((turn % 4) + 4) % 4
}
