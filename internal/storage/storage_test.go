package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxncube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)

	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)
}

func TestSessionCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	cube := nxncube.MustNew(4)
	id, err := repo.Create(cube, "", "practice")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Size)
	assert.Nil(t, s.ScrambleText)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "practice", *s.Notes)

	got, err := s.Cube()
	require.NoError(t, err)
	assert.True(t, got.Equal(cube))

	_, err = repo.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCommitStoresStateAndLog(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moveRepo := NewMoveRepository(db)

	cube := nxncube.MustNew(3)
	id, err := sessions.Create(cube, "", "")
	require.NoError(t, err)

	moves, err := nxncube.ParseMoves("H0 V2' S1", 3)
	require.NoError(t, err)
	require.NoError(t, cube.Apply(moves...))
	require.NoError(t, sessions.Commit(id, cube, moves))

	more := []nxncube.Move{{Kind: nxncube.Row, Layer: 2, Dir: nxncube.CCW}}
	require.NoError(t, cube.Apply(more...))
	require.NoError(t, sessions.Commit(id, cube, more))

	records, err := moveRepo.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 4)
	for i, rec := range records {
		assert.Equal(t, i, rec.MoveIndex)
	}
	assert.Equal(t, "H2'", records[3].Notation)

	logged, err := moveRepo.Moves(id)
	require.NoError(t, err)
	assert.Equal(t, append(moves, more...), logged)

	s, err := sessions.Get(id)
	require.NoError(t, err)
	stored, err := s.Cube()
	require.NoError(t, err)
	assert.True(t, stored.Equal(cube))

	// Replaying the log from solved must reach the stored state.
	replay := nxncube.MustNew(3)
	require.NoError(t, replay.Apply(logged...))
	assert.True(t, replay.Equal(stored))
}

func TestCommitRejectsSizeMismatch(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create(nxncube.MustNew(3), "", "")
	require.NoError(t, err)

	err = sessions.Commit(id, nxncube.MustNew(2), nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	n, err := NewMoveRepository(db).Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPopMoveAndReplace(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moveRepo := NewMoveRepository(db)

	tr, err := nxncube.NewTracker(3)
	require.NoError(t, err)
	id, err := sessions.Create(tr.Cube(), "", "")
	require.NoError(t, err)

	moves, err := nxncube.ParseMoves("R U", 3)
	require.NoError(t, err)
	require.NoError(t, tr.ApplyMoves(moves))
	require.NoError(t, sessions.Commit(id, tr.Cube(), moves))

	_, err = tr.Undo()
	require.NoError(t, err)
	require.NoError(t, sessions.PopMove(id, tr.Cube()))

	n, err := moveRepo.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, sessions.Replace(id, nxncube.MustNew(3), "H0 V1"))
	n, err = moveRepo.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)

	s, err := sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.ScrambleText)
	assert.Equal(t, "H0 V1", *s.ScrambleText)
}

func TestListAndDelete(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	a, err := sessions.Create(nxncube.MustNew(2), "", "")
	require.NoError(t, err)
	_, err = sessions.Create(nxncube.MustNew(5), "", "")
	require.NoError(t, err)

	list, err := sessions.List(10)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, sessions.Commit(a, nxncube.MustNew(2), []nxncube.Move{{Kind: nxncube.Slice, Layer: 0, Dir: nxncube.CW}}))
	require.NoError(t, NewSnapshotRepository(db).Save(a, "start", nxncube.MustNew(2), 0))

	require.NoError(t, sessions.Delete(a))
	assert.ErrorIs(t, sessions.Delete(a), ErrSessionNotFound)

	n, err := NewMoveRepository(db).Count(a)
	require.NoError(t, err)
	assert.Zero(t, n, "moves should be removed with their session")

	list, err = sessions.List(10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSnapshotSaveOverwriteAndGet(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	snaps := NewSnapshotRepository(db)

	cube := nxncube.MustNew(3)
	id, err := sessions.Create(cube, "", "")
	require.NoError(t, err)

	require.NoError(t, snaps.Save(id, "solved", cube, 0))
	require.NoError(t, cube.ApplyNotation("F R"))
	require.NoError(t, snaps.Save(id, "two", cube, 2))
	require.NoError(t, cube.ApplyNotation("U"))
	require.NoError(t, snaps.Save(id, "two", cube, 3))

	names, err := snaps.ListNames(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"solved", "two"}, names)

	s, err := snaps.Get(id, "two")
	require.NoError(t, err)
	assert.Equal(t, 3, s.MoveCount)
	got, err := s.Cube()
	require.NoError(t, err)
	assert.True(t, got.Equal(cube))

	_, err = snaps.Get(id, "nope")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
