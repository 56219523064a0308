package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxncube"
)

// MoveRecord represents a logged move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Kind      string
	Layer     int
	Direction int
	Notation  string
	CreatedAt time.Time
}

// Move converts the record back into a move.
func (m MoveRecord) Move() (nxncube.Move, error) {
	mv := nxncube.Move{Layer: m.Layer, Dir: nxncube.Direction(m.Direction)}
	switch m.Kind {
	case nxncube.Row.String():
		mv.Kind = nxncube.Row
	case nxncube.Column.String():
		mv.Kind = nxncube.Column
	case nxncube.Slice.String():
		mv.Kind = nxncube.Slice
	default:
		return nxncube.Move{}, fmt.Errorf("unknown move kind %q", m.Kind)
	}
	return mv, nil
}

// MoveRepository provides read access to the move log.
// Writes go through SessionRepository so state and log stay in step.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// appendMoves logs moves after the session's current last index.
func appendMoves(tx *sql.Tx, sessionID string, moves []nxncube.Move) error {
	var next int
	err := tx.QueryRow(`
		SELECT COALESCE(MAX(move_index) + 1, 0) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to get next move index: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, m := range moves {
		_, err := tx.Exec(`
			INSERT INTO moves (session_id, move_index, kind, layer, direction, notation, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, sessionID, next+i, m.Kind.String(), m.Layer, int(m.Dir), m.Notation(), now)
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", next+i, err)
		}
	}
	return nil
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, kind, layer, direction, notation, created_at
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var createdAt string
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Kind, &m.Layer, &m.Direction, &m.Notation, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		if m.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Moves returns the session's log as moves, oldest first.
func (r *MoveRepository) Moves(sessionID string) ([]nxncube.Move, error) {
	records, err := r.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	moves := make([]nxncube.Move, len(records))
	for i, rec := range records {
		m, err := rec.Move()
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", rec.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}

// Count returns the number of moves logged for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}
