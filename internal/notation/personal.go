package notation

import (
	"fmt"

	"github.com/SeamusWaldron/nxncube"
)

// Describe spells out a move from the viewer's side, facing Front with Top
// up. Moves on an outer layer also give the face-letter name.
//
//	H1   -> "row 1 right"
//	H0'  -> "row 0 left (U)"
//	V2   -> "column 2 up (R)"
//	S0   -> "slice 0 clockwise (F)"
func Describe(m nxncube.Move, size int) string {
	var what string
	switch m.Kind {
	case nxncube.Row:
		what = pick(m.Dir, "right", "left")
	case nxncube.Column:
		what = pick(m.Dir, "up", "down")
	case nxncube.Slice:
		what = pick(m.Dir, "clockwise", "anti-clockwise")
	default:
		return m.Notation()
	}

	s := fmt.Sprintf("%s %d %s", kindName(m.Kind), m.Layer, what)
	if face := FaceName(m, size); face != "" {
		s += " (" + face + ")"
	}
	return s
}

// FaceName returns the face-letter name of m (R, U', ...), or "" when m
// turns an inner layer. On a 1×1×1 cube every layer is outer and the first
// matching letter wins.
func FaceName(m nxncube.Move, size int) string {
	for _, letter := range []string{"U", "D", "L", "R", "F", "B"} {
		fm, err := nxncube.ParseMove(letter, size)
		if err != nil {
			continue
		}
		switch m {
		case fm:
			return letter
		case fm.Inverse():
			return letter + "'"
		}
	}
	return ""
}

func kindName(k nxncube.Kind) string {
	switch k {
	case nxncube.Row:
		return "row"
	case nxncube.Column:
		return "column"
	default:
		return "slice"
	}
}

func pick(d nxncube.Direction, cw, ccw string) string {
	if d == nxncube.CW {
		return cw
	}
	return ccw
}
