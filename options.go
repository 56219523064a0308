package nxncube

// Option configures a Tracker.
type Option func(*config)

type config struct {
	moveHistory bool
	onSolved    func(moves int)
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves(),
// and Undo is available.
// Disable this for long simulations to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithSolvedCallback sets a callback fired each time a move brings the cube
// into the solved state. It receives the number of moves applied so far.
func WithSolvedCallback(cb func(moves int)) Option {
	return func(c *config) {
		c.onSolved = cb
	}
}
