package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"praxis/internal/patient/models"
	"praxis/pkg/cnp"
	id "praxis/pkg/domain"
)

// uniqueViolation is the postgres error code raised by the cnp unique
// constraint.
const uniqueViolation = "23505"

// PostgresStore persists patient records with a pgx connection pool.
//
// Expected schema:
//
//	CREATE TABLE patients (
//	    id         UUID PRIMARY KEY,
//	    cnp        TEXT NOT NULL UNIQUE,
//	    full_name  TEXT NOT NULL,
//	    birth_date DATE NOT NULL,
//	    sex        TEXT NOT NULL,
//	    county     TEXT NOT NULL,
//	    century    INT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL-backed patient store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Save stores a patient, rejecting duplicate identifiers.
func (s *PostgresStore) Save(ctx context.Context, patient models.Patient) error {
	query := `
		INSERT INTO patients (id, cnp, full_name, birth_date, sex, county, century, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.pool.Exec(ctx, query,
		patient.ID.String(), patient.CNP, patient.FullName, patient.BirthDate,
		string(patient.Sex), patient.County, patient.Century, patient.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateCNP
		}
		return fmt.Errorf("save patient: %w", err)
	}
	return nil
}

// FindByID looks a patient up by its record ID.
func (s *PostgresStore) FindByID(ctx context.Context, patientID id.PatientID) (models.Patient, error) {
	return s.findOne(ctx, `WHERE id = $1`, patientID.String())
}

// FindByCNP looks a patient up by its raw identifier.
func (s *PostgresStore) FindByCNP(ctx context.Context, rawCNP string) (models.Patient, error) {
	return s.findOne(ctx, `WHERE cnp = $1`, rawCNP)
}

func (s *PostgresStore) findOne(ctx context.Context, where string, arg any) (models.Patient, error) {
	query := `
		SELECT id, cnp, full_name, birth_date, sex, county, century, created_at
		FROM patients ` + where
	row := s.pool.QueryRow(ctx, query, arg)

	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Patient{}, ErrNotFound
		}
		return models.Patient{}, fmt.Errorf("find patient: %w", err)
	}
	return p, nil
}

// List returns up to limit patients, optionally filtered by county name.
func (s *PostgresStore) List(ctx context.Context, county string, limit int) ([]models.Patient, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, cnp, full_name, birth_date, sex, county, century, created_at
		FROM patients
	`
	args := []any{limit}
	if county != "" {
		query += ` WHERE county = $2`
		args = append(args, county)
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []models.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func scanPatient(row pgx.Row) (models.Patient, error) {
	var (
		p      models.Patient
		rawID  string
		rawSex string
	)
	err := row.Scan(&rawID, &p.CNP, &p.FullName, &p.BirthDate, &rawSex, &p.County, &p.Century, &p.CreatedAt)
	if err != nil {
		return models.Patient{}, err
	}
	patientID, err := id.ParsePatientID(rawID)
	if err != nil {
		return models.Patient{}, err
	}
	p.ID = patientID
	p.Sex = cnp.Sex(rawSex)
	return p, nil
}
