package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/escalate-ai/router/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS dispatch_events (
			event_id TEXT PRIMARY KEY,
			request_id TEXT NOT NULL,
			ts INTEGER NOT NULL,
			type TEXT NOT NULL,
			payload TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dispatch_events_request ON dispatch_events(request_id, ts)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordEvent inserts a dispatch event.
func (s *SQLiteStore) RecordEvent(ctx context.Context, event *DispatchEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dispatch_events (event_id, request_id, ts, type, payload) VALUES (?, ?, ?, ?, ?)`,
		event.EventID, event.RequestID, event.Ts, string(event.Type), string(event.Payload))
	return err
}

// RequestIDs lists the distinct request ids present in the log, oldest
// first.
func (s *SQLiteStore) RequestIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT request_id FROM dispatch_events GROUP BY request_id ORDER BY MIN(ts) ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetEvents retrieves the events for one request, oldest first.
func (s *SQLiteStore) GetEvents(ctx context.Context, requestID string) ([]DispatchEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT event_id, request_id, ts, type, payload FROM dispatch_events WHERE request_id = ? ORDER BY ts ASC, rowid ASC`,
		requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []DispatchEvent
	for rows.Next() {
		var e DispatchEvent
		var typ string
		var payload sql.NullString
		if err := rows.Scan(&e.EventID, &e.RequestID, &e.Ts, &typ, &payload); err != nil {
			return nil, err
		}
		e.Type = domain.EventType(typ)
		if payload.Valid {
			e.Payload = []byte(payload.String)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
