package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

var _ repository.PrescriptionRepository = (*PrescriptionRepo)(nil)

// PrescriptionRepo implements the PrescriptionRepository port over PostgreSQL (pool or tx).
type PrescriptionRepo struct {
	q Querier
}

// NewPrescriptionRepository builds the adapter. Pass a pool or tx (Querier).
func NewPrescriptionRepository(q Querier) *PrescriptionRepo {
	return &PrescriptionRepo{q: q}
}

// Create persists a prescription and its lines.
func (r *PrescriptionRepo) Create(p *entity.Prescription, items []entity.PrescriptionItem) error {
	ctx := context.Background()
	query := `
		INSERT INTO prescriptions (id, patient_id, prescriber_id, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, p.ID, p.PatientID, p.PrescriberID, p.Status, p.Notes, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert prescription: %w", err)
	}

	lineQuery := `
		INSERT INTO prescription_items (prescription_id, stock_item_id, quantity, dosage)
		VALUES ($1, $2, $3, $4)`
	for i := range items {
		items[i].PrescriptionID = p.ID
		if _, err := r.q.Exec(ctx, lineQuery, p.ID, items[i].StockItemID, items[i].Quantity, items[i].Dosage); err != nil {
			return fmt.Errorf("insert prescription item: %w", err)
		}
	}
	return nil
}

// GetByID returns a prescription with its lines, or ErrNotFound.
func (r *PrescriptionRepo) GetByID(id string) (*entity.Prescription, []entity.PrescriptionItem, error) {
	ctx := context.Background()
	query := `
		SELECT id, patient_id, prescriber_id, status, notes, created_at, dispensed_at
		FROM prescriptions WHERE id = $1`
	var p entity.Prescription
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.PatientID, &p.PrescriberID, &p.Status, &p.Notes, &p.CreatedAt, &p.DispensedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get prescription: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT prescription_id, stock_item_id, quantity, dosage
		FROM prescription_items WHERE prescription_id = $1 ORDER BY stock_item_id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get prescription items: %w", err)
	}
	defer rows.Close()

	var items []entity.PrescriptionItem
	for rows.Next() {
		var it entity.PrescriptionItem
		if err := rows.Scan(&it.PrescriptionID, &it.StockItemID, &it.Quantity, &it.Dosage); err != nil {
			return nil, nil, fmt.Errorf("scan prescription item: %w", err)
		}
		items = append(items, it)
	}
	return &p, items, rows.Err()
}

// ListByPatient returns a patient's prescriptions, newest first.
func (r *PrescriptionRepo) ListByPatient(patientID string, limit, offset int) ([]*entity.Prescription, error) {
	query := `
		SELECT id, patient_id, prescriber_id, status, notes, created_at, dispensed_at
		FROM prescriptions WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, patientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Prescription
	for rows.Next() {
		var p entity.Prescription
		if err := rows.Scan(&p.ID, &p.PatientID, &p.PrescriberID, &p.Status, &p.Notes, &p.CreatedAt, &p.DispensedAt); err != nil {
			return nil, fmt.Errorf("scan prescription: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// MarkDispensed stamps the prescription as dispensed.
func (r *PrescriptionRepo) MarkDispensed(id string, at time.Time) error {
	query := `UPDATE prescriptions SET status = $2, dispensed_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.PrescriptionDispensed, at)
	if err != nil {
		return fmt.Errorf("mark prescription dispensed: %w", err)
	}
	return nil
}

// UpdateStatus moves a prescription between states.
func (r *PrescriptionRepo) UpdateStatus(id string, status string) error {
	query := `UPDATE prescriptions SET status = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update prescription status: %w", err)
	}
	return nil
}
