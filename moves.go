package nxncube

// Named sequences in outer-face notation. They are size-independent; parse
// them against a cube with ParseMoves or Cube.ApplyNotation.
//
// Example:
//
//	cube.ApplyNotation(nxncube.SexyMove)
const (
	// Sexy move: R U R' U'. Six repetitions are the identity.
	SexyMove = "R U R' U'"

	// Inverse sexy move: U R U' R'
	InverseSexyMove = "U R U' R'"

	// T-perm algorithm. Two repetitions return a solved cube to solved.
	TPerm = "R U R' U' R' F R2 U' R' U' R U R' F'"
)
