// Package models defines the audit trail event types.
package models

import (
	"time"

	id "praxis/pkg/domain"
)

// EventKind classifies an audit event.
type EventKind string

const (
	KindValidationAccepted EventKind = "validation.accepted"
	KindValidationRejected EventKind = "validation.rejected"
	KindPatientRegistered  EventKind = "patient.registered"
)

// Event is one append-only audit entry. The identifier is stored masked;
// the raw CNP never enters the audit trail.
type Event struct {
	ID        id.AuditEventID `json:"id"`
	Kind      EventKind       `json:"kind"`
	MaskedCNP string          `json:"masked_cnp"`
	Detail    string          `json:"detail,omitempty"`
	At        time.Time       `json:"at"`
}

// MaskCNP keeps the first three and last two digits of an identifier and
// blanks the rest, which removes the full birth date and sequence number
// while leaving enough to correlate events.
func MaskCNP(cnp string) string {
	if len(cnp) < 6 {
		return "*****"
	}
	masked := make([]byte, len(cnp))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[:3], cnp[:3])
	copy(masked[len(masked)-2:], cnp[len(cnp)-2:])
	return string(masked)
}
