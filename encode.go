package nxncube

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode returns a compact text form of the cube: the size, a colon, then
// the six faces in FaceID order, each as N² color letters in row-major
// order, separated by slashes.
//
//	2:WWWW/OOOO/GGGG/YYYY/RRRR/BBBB
func (c *Cube) Encode() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(c.size))
	sb.WriteByte(':')
	for i, f := range Faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, row := range c.faces[f] {
			for _, color := range row {
				sb.WriteString(color.String())
			}
		}
	}
	return sb.String()
}

// Decode parses the output of Encode. The faces are validated the same way
// FromFaces validates them.
func Decode(s string) (*Cube, error) {
	sizePart, body, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing size prefix", ErrInvalidEncoding)
	}
	n, err := strconv.Atoi(sizePart)
	if err != nil {
		return nil, fmt.Errorf("%w: size %q", ErrInvalidEncoding, sizePart)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrBadShape, n)
	}
	// Six faces of n*n letters need at least n letters; this also keeps
	// n*n below from overflowing.
	if n > len(body) {
		return nil, fmt.Errorf("%w: size %d does not fit %d bytes of faces", ErrBadShape, n, len(body))
	}

	parts := strings.Split(body, "/")
	if len(parts) != len(Faces) {
		return nil, fmt.Errorf("%w: %d faces, want %d", ErrBadShape, len(parts), len(Faces))
	}

	var faces [6]Grid
	for i, part := range parts {
		letters := []rune(part)
		if len(letters) != n*n {
			return nil, fmt.Errorf("%w: face %s has %d facelets, want %d", ErrBadShape, Faces[i], len(letters), n*n)
		}
		g := newGrid(n, 0)
		for j, r := range letters {
			color, err := ParseColor(r)
			if err != nil {
				return nil, fmt.Errorf("face %s: %w", Faces[i], err)
			}
			g[j/n][j%n] = color
		}
		faces[i] = g
	}

	return FromFaces(faces)
}

// MarshalText implements encoding.TextMarshaler.
func (c *Cube) MarshalText() ([]byte, error) {
	return []byte(c.Encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cube) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}
