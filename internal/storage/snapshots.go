package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxncube"
)

// ErrSnapshotNotFound is returned when a session has no snapshot by a name.
var ErrSnapshotNotFound = errors.New("storage: snapshot not found")

// Snapshot is a named copy of a session's cube state.
type Snapshot struct {
	SnapshotID int64
	SessionID  string
	Name       string
	State      string
	MoveCount  int
	CreatedAt  time.Time
}

// Cube decodes the stored state.
func (s *Snapshot) Cube() (*nxncube.Cube, error) {
	return nxncube.Decode(s.State)
}

// SnapshotRepository provides CRUD operations for snapshots.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save stores cube under name, replacing an earlier snapshot of that name.
func (r *SnapshotRepository) Save(sessionID, name string, cube *nxncube.Cube, moveCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO snapshots (session_id, name, state, move_count, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (session_id, name) DO UPDATE SET
			state = excluded.state,
			move_count = excluded.move_count,
			created_at = excluded.created_at
	`, sessionID, name, cube.Encode(), moveCount, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Get retrieves a snapshot by session and name.
func (r *SnapshotRepository) Get(sessionID, name string) (*Snapshot, error) {
	var s Snapshot
	var createdAt string
	err := r.db.QueryRow(`
		SELECT snapshot_id, session_id, name, state, move_count, created_at
		FROM snapshots
		WHERE session_id = ? AND name = ?
	`, sessionID, name).Scan(&s.SnapshotID, &s.SessionID, &s.Name, &s.State, &s.MoveCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &s, nil
}

// ListNames returns the snapshot names of a session, alphabetically.
func (r *SnapshotRepository) ListNames(sessionID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT name FROM snapshots WHERE session_id = ? ORDER BY name
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
