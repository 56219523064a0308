package nxncube

// Tracker wraps a Cube for a driving collaborator: it applies moves,
// remembers them and reports transitions into the solved state.
type Tracker struct {
	cube      *Cube
	cfg       *config
	history   []Move
	moveCount int
	wasSolved bool
}

// NewTracker creates a tracker around a solved cube of the given size.
func NewTracker(size int, opts ...Option) (*Tracker, error) {
	c, err := New(size)
	if err != nil {
		return nil, err
	}
	return TrackCube(c, opts...), nil
}

// TrackCube creates a tracker around an existing cube. The tracker takes
// ownership of c.
func TrackCube(c *Cube, opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cube:      c,
		cfg:       cfg,
		wasSolved: c.IsSolved(),
	}
}

// Resume creates a tracker around c as though history had already been
// applied to it through the tracker. The solved callback is armed from the
// cube's current state.
func Resume(c *Cube, history []Move, opts ...Option) *Tracker {
	t := TrackCube(c, opts...)
	t.moveCount = len(history)
	if t.cfg.moveHistory {
		t.history = append([]Move(nil), history...)
	}
	return t
}

// Reset resets the tracker to a solved cube state and clears the history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.history = nil
	t.moveCount = 0
	t.wasSolved = true
}

// ApplyMove applies a move and checks for a transition into solved.
func (t *Tracker) ApplyMove(m Move) error {
	if err := t.cube.ApplyMove(m); err != nil {
		return err
	}
	t.moveCount++
	if t.cfg.moveHistory {
		t.history = append(t.history, m)
	}
	t.checkSolved()
	return nil
}

// ApplyMoves applies multiple moves, stopping at the first error.
func (t *Tracker) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses s against the tracked cube's size and applies it.
func (t *Tracker) ApplyNotation(s string) error {
	moves, err := ParseMoves(s, t.cube.Size())
	if err != nil {
		return err
	}
	return t.ApplyMoves(moves)
}

// Undo reverts the most recent move and returns it.
// It needs move history.
func (t *Tracker) Undo() (Move, error) {
	if len(t.history) == 0 {
		return Move{}, ErrNothingToUndo
	}
	last := t.history[len(t.history)-1]
	if err := t.cube.ApplyMove(last.Inverse()); err != nil {
		return Move{}, err
	}
	t.history = t.history[:len(t.history)-1]
	t.moveCount--
	t.checkSolved()
	return last, nil
}

// checkSolved fires the callback only on an unsolved→solved edge.
func (t *Tracker) checkSolved() {
	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.cfg.onSolved != nil {
		t.cfg.onSolved(t.moveCount)
	}
	t.wasSolved = solved
}

// Moves returns a copy of the recorded history.
func (t *Tracker) Moves() []Move {
	return append([]Move(nil), t.history...)
}

// MoveCount returns the number of moves applied since the last reset.
func (t *Tracker) MoveCount() int {
	return t.moveCount
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
