package nxncube

import "errors"

// Sentinel errors for the nxncube package.
var (
	// Validation errors
	ErrBadShape         = errors.New("nxncube: face is not N×N")
	ErrBadColor         = errors.New("nxncube: facelet color outside alphabet")
	ErrLayerOutOfRange  = errors.New("nxncube: layer index out of range")
	ErrInvalidDirection = errors.New("nxncube: invalid direction")

	// Parsing errors
	ErrInvalidNotation = errors.New("nxncube: invalid move notation")
	ErrInvalidEncoding = errors.New("nxncube: invalid state encoding")

	// Tracker errors
	ErrNothingToUndo = errors.New("nxncube: no move to undo")
)
