package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/config"
	"github.com/SeamusWaldron/nxncube/internal/storage"
)

func newTestStore(t *testing.T) *store {
	t.Helper()
	dir := t.TempDir()

	db, err := storage.Open(filepath.Join(dir, "cli.db"), nil)
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp())

	state, err := config.NewStateFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	s := newStore(db, state)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestActiveWithoutSession(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.active()
	assert.ErrorIs(t, err, errNoActiveSession)
}

func TestActiveTrackerResumesLog(t *testing.T) {
	s := newTestStore(t)

	cube := nxncube.MustNew(3)
	id, err := s.sessions.Create(cube, "", "")
	require.NoError(t, err)
	require.NoError(t, s.state.SetActiveSession(id))

	moves, err := nxncube.ParseMoves("R U R'", 3)
	require.NoError(t, err)
	require.NoError(t, cube.Apply(moves...))
	require.NoError(t, s.sessions.Commit(id, cube, moves))

	sess, tr, err := s.activeTracker()
	require.NoError(t, err)
	assert.Equal(t, id, sess.SessionID)
	assert.Equal(t, 3, tr.MoveCount())
	assert.True(t, tr.Cube().Equal(cube))

	// Undo through a repoSink, the way play does.
	m := newPlayModel(tr, repoSink{repo: s.sessions, id: id}, "")
	for range moves {
		m.undo()
		require.NoError(t, m.err)
	}

	_, stored, err := s.active()
	require.NoError(t, err)
	assert.True(t, stored.IsSolved())

	n, err := s.moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRenderCube(t *testing.T) {
	out := renderCube(nxncube.MustNew(2))
	assert.Contains(t, out, "U: WW WW")
	assert.Contains(t, out, "D: BB BB")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("1234567890"))
}
