// Package nxncube simulates the state of an N×N×N Rubik's cube.
//
// # Features
//
//   - Solved or externally supplied starting states, with validation
//   - Three layer operators: rows, columns and front-to-back slices
//   - Outer-face (U D L R F B) and layer (H V S) notation
//   - A compact text encoding for persistence
//   - A Tracker with move history, undo and a solved callback
//
// # Quick Start
//
//	cube, err := nxncube.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Layer operators
//	cube.RotateRow(1, nxncube.CW)
//	cube.RotateColumn(0, nxncube.CCW)
//	cube.RotateFace(3, nxncube.CW)
//
//	// Or from notation
//	cube.ApplyNotation("R U R' U' H1 V2'")
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Faces and layers
//
// Faces are Top, Left, Front, Right, Back and Bottom. Each is an N×N Grid
// addressed as seen from outside the cube (see Grid). A layer index runs
// from 0 to N-1: rows from Top to Bottom, columns from Left to Right, slices
// from Front to Back. Turning layer 0 or N-1 also turns the boundary face in
// its own plane.
//
// Every operator validates its arguments before changing anything and
// builds the next state from an untouched copy, so a failed call leaves the
// cube exactly as it was.
package nxncube
