package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // postgres driver

	"praxis/internal/audit/models"
	id "praxis/pkg/domain"
)

// PostgresStore persists audit events in PostgreSQL via database/sql.
//
// Expected schema:
//
//	CREATE TABLE audit_events (
//	    id         UUID PRIMARY KEY,
//	    kind       TEXT NOT NULL,
//	    masked_cnp TEXT NOT NULL,
//	    detail     TEXT NOT NULL DEFAULT '',
//	    at         TIMESTAMPTZ NOT NULL
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed audit store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres opens a database/sql handle with the pq driver.
func OpenPostgres(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	return db, nil
}

// Append records an event.
func (s *PostgresStore) Append(ctx context.Context, event models.Event) error {
	query := `
		INSERT INTO audit_events (id, kind, masked_cnp, detail, at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID.String(), string(event.Kind), event.MaskedCNP, event.Detail, event.At)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first.
func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, masked_cnp, detail, at
		FROM audit_events
		ORDER BY at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var (
			e     models.Event
			rawID string
			kind  string
		)
		if err := rows.Scan(&rawID, &kind, &e.MaskedCNP, &e.Detail, &e.At); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		eventID, err := id.ParseAuditEventID(rawID)
		if err != nil {
			return nil, fmt.Errorf("parse audit event id: %w", err)
		}
		e.ID = eventID
		e.Kind = models.EventKind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}
