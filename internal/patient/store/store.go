// Package store persists patient records. Stores are interface-driven to
// keep the service testable and to allow swapping the in-memory and
// PostgreSQL implementations without rewiring business code.
package store

import (
	"context"

	"praxis/internal/patient/models"
	id "praxis/pkg/domain"
	dErrors "praxis/pkg/domain-errors"
)

var (
	// ErrNotFound keeps store-specific 404s consistent across
	// implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "patient not found")

	// ErrDuplicateCNP signals that the identifier is already registered.
	ErrDuplicateCNP = dErrors.New(dErrors.CodeConflict, "CNP already registered")
)

// Store is the patient persistence boundary.
type Store interface {
	Save(ctx context.Context, patient models.Patient) error
	FindByID(ctx context.Context, patientID id.PatientID) (models.Patient, error)
	FindByCNP(ctx context.Context, cnp string) (models.Patient, error)
	List(ctx context.Context, county string, limit int) ([]models.Patient, error)
}
