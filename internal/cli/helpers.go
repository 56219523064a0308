package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/config"
	"github.com/SeamusWaldron/nxncube/internal/storage"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// errNoActiveSession is returned by commands that need a current session.
var errNoActiveSession = errors.New("no active session (use 'nxncube new' first)")

// store bundles the database repositories with the CLI state file.
type store struct {
	db        *storage.DB
	sessions  *storage.SessionRepository
	moves     *storage.MoveRepository
	snapshots *storage.SnapshotRepository
	state     *config.StateFile
}

// openStore opens and migrates the configured database and loads the state
// file. The caller closes it.
func openStore() (*store, error) {
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path, logger)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	state, err := config.NewDefaultStateFile()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return newStore(db, state), nil
}

func newStore(db *storage.DB, state *config.StateFile) *store {
	return &store{
		db:        db,
		sessions:  storage.NewSessionRepository(db),
		moves:     storage.NewMoveRepository(db),
		snapshots: storage.NewSnapshotRepository(db),
		state:     state,
	}
}

func (s *store) Close() error {
	return s.db.Close()
}

// active loads the active session and its cube.
func (s *store) active() (*storage.Session, *nxncube.Cube, error) {
	id := s.state.ActiveSessionID()
	if id == "" {
		return nil, nil, errNoActiveSession
	}
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, nil, err
	}
	cube, err := sess.Cube()
	if err != nil {
		return nil, nil, err
	}
	return sess, cube, nil
}

// activeTracker loads the active session into a tracker whose history is
// the session's move log, so Undo works across invocations.
func (s *store) activeTracker() (*storage.Session, *nxncube.Tracker, error) {
	sess, cube, err := s.active()
	if err != nil {
		return nil, nil, err
	}
	log, err := s.moves.Moves(sess.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return sess, nxncube.Resume(cube, log), nil
}

// renderCube formats a cube as labelled face rows.
func renderCube(c *nxncube.Cube) string {
	var sb strings.Builder
	for _, f := range nxncube.Faces {
		sb.WriteString(labelStyle.Render(f.String() + ":"))
		for _, row := range c.Face(f) {
			sb.WriteByte(' ')
			for _, color := range row {
				sb.WriteString(color.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func solvedLabel(solved bool) string {
	if solved {
		return solvedStyle.Render("solved")
	}
	return labelStyle.Render("unsolved")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
