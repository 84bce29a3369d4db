// Package store persists audit events. Stores are interface-driven so the
// in-memory ring and PostgreSQL implementations stay swappable.
package store

import (
	"context"

	"praxis/internal/audit/models"
)

// Store is the audit persistence boundary.
type Store interface {
	Append(ctx context.Context, event models.Event) error
	ListRecent(ctx context.Context, limit int) ([]models.Event, error)
}
