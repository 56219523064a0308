package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/nxncube"
)

// ErrSessionNotFound is returned when a session ID has no row.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session represents a persisted cube in the database.
type Session struct {
	SessionID    string
	Size         int
	State        string // nxncube.Cube.Encode output
	ScrambleText *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Cube decodes the stored state.
func (s *Session) Cube() (*nxncube.Cube, error) {
	c, err := nxncube.Decode(s.State)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", s.SessionID, err)
	}
	return c, nil
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session holding cube and returns its ID.
func (r *SessionRepository) Create(cube *nxncube.Cube, scramble, notes string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	var scramblePtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, size, state, scramble_text, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, cube.Size(), cube.Encode(), scramblePtr, notesPtr, now, now)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	r.db.logger.Debug("created session", slog.String("session_id", id), slog.Int("size", cube.Size()))
	return id, nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(id string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, size, state, scramble_text, notes, created_at, updated_at
		FROM sessions
		WHERE session_id = ?
	`, id)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List returns the most recently updated sessions first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, size, state, scramble_text, notes, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC, created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Commit stores cube as the session's state and appends moves to its log,
// in one transaction.
func (r *SessionRepository) Commit(id string, cube *nxncube.Cube, moves []nxncube.Move) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if err := updateState(tx, id, cube); err != nil {
			return err
		}
		return appendMoves(tx, id, moves)
	})
}

// PopMove stores cube as the session's state and removes the last logged
// move, in one transaction.
func (r *SessionRepository) PopMove(id string, cube *nxncube.Cube) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if err := updateState(tx, id, cube); err != nil {
			return err
		}
		_, err := tx.Exec(`
			DELETE FROM moves
			WHERE session_id = ? AND move_index = (SELECT MAX(move_index) FROM moves WHERE session_id = ?)
		`, id, id)
		if err != nil {
			return fmt.Errorf("failed to delete last move: %w", err)
		}
		return nil
	})
}

// Replace stores cube as the session's state and clears its move log. It
// backs reset and restore, where the log no longer leads to the state.
func (r *SessionRepository) Replace(id string, cube *nxncube.Cube, scramble string) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if err := updateState(tx, id, cube); err != nil {
			return err
		}
		var scramblePtr *string
		if scramble != "" {
			scramblePtr = &scramble
		}
		if _, err := tx.Exec("UPDATE sessions SET scramble_text = ? WHERE session_id = ?", scramblePtr, id); err != nil {
			return fmt.Errorf("failed to set scramble: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM moves WHERE session_id = ?", id); err != nil {
			return fmt.Errorf("failed to clear moves: %w", err)
		}
		return nil
	})
}

// Delete removes a session with its moves and snapshots.
func (r *SessionRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

func updateState(tx *sql.Tx, id string, cube *nxncube.Cube) error {
	result, err := tx.Exec(`
		UPDATE sessions SET state = ?, updated_at = ? WHERE session_id = ? AND size = ?
	`, cube.Encode(), time.Now().UTC().Format(time.RFC3339), id, cube.Size())
	if err != nil {
		return fmt.Errorf("failed to update session state: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s (or size mismatch)", ErrSessionNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var createdAt, updatedAt string
	err := row.Scan(&s.SessionID, &s.Size, &s.State, &s.ScrambleText, &s.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return &s, nil
}
