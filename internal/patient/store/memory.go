package store

import (
	"context"
	"sync"

	"praxis/internal/patient/models"
	id "praxis/pkg/domain"
)

// InMemoryStore keeps patient records in maps guarded by a RWMutex. It
// favors clarity over performance and backs single-instance deployments
// and tests.
type InMemoryStore struct {
	mu       sync.RWMutex
	patients map[id.PatientID]models.Patient
	byCNP    map[string]id.PatientID
}

// NewInMemoryStore creates an empty in-memory patient store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		patients: make(map[id.PatientID]models.Patient),
		byCNP:    make(map[string]id.PatientID),
	}
}

// Save stores a patient, rejecting duplicate identifiers.
func (s *InMemoryStore) Save(_ context.Context, patient models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byCNP[patient.CNP]; ok && existing != patient.ID {
		return ErrDuplicateCNP
	}
	s.patients[patient.ID] = patient
	s.byCNP[patient.CNP] = patient.ID
	return nil
}

// FindByID looks a patient up by its record ID.
func (s *InMemoryStore) FindByID(_ context.Context, patientID id.PatientID) (models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.patients[patientID]; ok {
		return p, nil
	}
	return models.Patient{}, ErrNotFound
}

// FindByCNP looks a patient up by its raw identifier.
func (s *InMemoryStore) FindByCNP(_ context.Context, cnp string) (models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if patientID, ok := s.byCNP[cnp]; ok {
		return s.patients[patientID], nil
	}
	return models.Patient{}, ErrNotFound
}

// List returns up to limit patients, optionally filtered by county name.
func (s *InMemoryStore) List(_ context.Context, county string, limit int) ([]models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Patient, 0)
	for _, p := range s.patients {
		if county != "" && p.County != county {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
