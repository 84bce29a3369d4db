// Package models defines the patient record and its request/response types.
package models

import (
	"strings"
	"time"

	"praxis/pkg/cnp"
	id "praxis/pkg/domain"
	dErrors "praxis/pkg/domain-errors"
)

// Patient is the stored intake record: the raw identifier plus the
// demographics decoded from it at registration time.
type Patient struct {
	ID        id.PatientID
	CNP       string
	FullName  string
	BirthDate time.Time
	Sex       cnp.Sex
	County    string
	Century   int
	CreatedAt time.Time
}

// RegisterPatientRequest is the payload for POST /patients.
type RegisterPatientRequest struct {
	CNP      string `json:"cnp"`
	FullName string `json:"full_name"`
}

// Validate checks request-shape invariants. CNP semantics are the
// analyzer's job, not this method's.
func (r RegisterPatientRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "full_name is required")
	}
	if len(r.FullName) > 200 {
		return dErrors.New(dErrors.CodeBadRequest, "full_name too long")
	}
	return nil
}

// PatientResponse is the JSON shape returned for a patient record.
type PatientResponse struct {
	ID          string    `json:"id"`
	CNP         string    `json:"cnp"`
	FullName    string    `json:"full_name"`
	BirthDate   time.Time `json:"birth_date"`
	Sex         cnp.Sex   `json:"sex"`
	County      string    `json:"county"`
	Century     int       `json:"century"`
	CreatedAt   time.Time `json:"created_at"`
	DisplayCNP  string    `json:"display_cnp"`
	Description string    `json:"description,omitempty"`
}

// ToResponse maps a Patient to its transport shape.
func ToResponse(p Patient) PatientResponse {
	return PatientResponse{
		ID:         p.ID.String(),
		CNP:        p.CNP,
		FullName:   p.FullName,
		BirthDate:  p.BirthDate,
		Sex:        p.Sex,
		County:     p.County,
		Century:    p.Century,
		CreatedAt:  p.CreatedAt,
		DisplayCNP: cnp.Format(p.CNP),
	}
}
