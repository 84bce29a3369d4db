// Package domain holds typed identifiers shared across modules. Typed IDs
// prevent cross-type assignment at compile time, so a patient ID can never
// be passed where an audit event ID is expected.
package domain

import (
	"github.com/google/uuid"

	dErrors "praxis/pkg/domain-errors"
)

// PatientID identifies a registered patient record.
type PatientID uuid.UUID

// AuditEventID identifies an entry in the audit trail.
type AuditEventID uuid.UUID

// NewPatientID returns a fresh random PatientID.
func NewPatientID() PatientID { return PatientID(uuid.New()) }

// NewAuditEventID returns a fresh random AuditEventID.
func NewAuditEventID() AuditEventID { return AuditEventID(uuid.New()) }

// ParsePatientID parses and validates an external patient ID. IDs must be
// valid, non-nil UUIDs; this is enforced at every trust boundary.
func ParsePatientID(s string) (PatientID, error) {
	id, err := parseUUID(s)
	if err != nil {
		return PatientID{}, err
	}
	return PatientID(id), nil
}

// ParseAuditEventID parses and validates an external audit event ID.
func ParseAuditEventID(s string) (AuditEventID, error) {
	id, err := parseUUID(s)
	if err != nil {
		return AuditEventID{}, err
	}
	return AuditEventID(id), nil
}

func (id PatientID) String() string    { return uuid.UUID(id).String() }
func (id AuditEventID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is the nil UUID.
func (id PatientID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	if len(s) > 64 {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id too long")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id must be a valid UUID")
	}
	if id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return id, nil
}
