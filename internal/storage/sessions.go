package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// ListSessions returns the user's history, most recent first.
func (db *DB) ListSessions(ctx context.Context, userID string) ([]models.Session, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT session_data FROM workout_sessions
		WHERE user_id = $1
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		var s models.Session
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decoding session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// InsertSession records a finished day. Sessions are immutable, so a repeated
// id is ignored.
func (db *DB) InsertSession(ctx context.Context, userID string, s models.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO workout_sessions (id, user_id, date, session_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, s.ID, userID, s.Date, raw)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// DeleteSessions clears the user's history.
func (db *DB) DeleteSessions(ctx context.Context, userID string) error {
	if _, err := db.Pool.Exec(ctx, `DELETE FROM workout_sessions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("deleting sessions: %w", err)
	}
	return nil
}
