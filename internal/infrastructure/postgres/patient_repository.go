package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implements the PatientRepository port over PostgreSQL.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository builds the persistence adapter for patients.
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

const patientColumns = `id, first_name, last_name, gender, date_of_birth, phone, residence, created_at, updated_at`

// Create persists a new patient.
func (r *PatientRepo) Create(p *entity.Patient) error {
	query := `
		INSERT INTO patients (id, first_name, last_name, gender, date_of_birth, phone, residence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.FirstName, p.LastName, p.Gender, p.DateOfBirth, p.Phone, p.Residence,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// GetByID returns a patient, or ErrNotFound.
func (r *PatientRepo) GetByID(id string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`
	var p entity.Patient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.DateOfBirth, &p.Phone, &p.Residence,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return &p, nil
}

// Update persists patient demographics.
func (r *PatientRepo) Update(p *entity.Patient) error {
	query := `
		UPDATE patients
		SET first_name = $2, last_name = $3, gender = $4, date_of_birth = $5,
		    phone = $6, residence = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.FirstName, p.LastName, p.Gender, p.DateOfBirth, p.Phone, p.Residence,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

// Delete removes a patient record.
func (r *PatientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

// List returns patients ordered by last name.
func (r *PatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// SearchByName does a case-insensitive prefix search on first or last name.
func (r *PatientRepo) SearchByName(q string, limit int) ([]*entity.Patient, error) {
	query := `
		SELECT ` + patientColumns + ` FROM patients
		WHERE first_name ILIKE $1 || '%' OR last_name ILIKE $1 || '%'
		ORDER BY last_name, first_name LIMIT $2`
	return r.queryMany(query, q, limit)
}

func (r *PatientRepo) queryMany(query string, args ...any) ([]*entity.Patient, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}
	defer rows.Close()

	var patients []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.DateOfBirth, &p.Phone, &p.Residence,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}
