package postgres

import (
	"context"
	"fmt"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

// SalaryRepo implements the SalaryRepository port over PostgreSQL.
type SalaryRepo struct {
	q Querier
}

// NewSalaryRepository builds the persistence adapter for salary records.
func NewSalaryRepository(q Querier) *SalaryRepo {
	return &SalaryRepo{q: q}
}

// Create persists a salary record.
func (r *SalaryRepo) Create(s *entity.SalaryRecord) error {
	query := `
		INSERT INTO salary_records (id, employee_id, period, gross_pay, deductions, net_pay, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.EmployeeID, s.Period, s.GrossPay, s.Deductions, s.NetPay, s.PaidAt, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert salary record: duplicate for employee %s period %s", s.EmployeeID, s.Period)
		}
		return fmt.Errorf("insert salary record: %w", err)
	}
	return nil
}

// ListByPeriod returns all salary records for one period.
func (r *SalaryRepo) ListByPeriod(period string) ([]*entity.SalaryRecord, error) {
	query := `
		SELECT id, employee_id, period, gross_pay, deductions, net_pay, paid_at, created_at
		FROM salary_records WHERE period = $1 ORDER BY employee_id`
	return r.queryMany(query, period)
}

// List returns salary records, newest period first.
func (r *SalaryRepo) List(limit, offset int) ([]*entity.SalaryRecord, error) {
	query := `
		SELECT id, employee_id, period, gross_pay, deductions, net_pay, paid_at, created_at
		FROM salary_records ORDER BY period DESC, employee_id LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

func (r *SalaryRepo) queryMany(query string, args ...any) ([]*entity.SalaryRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query salary records: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalaryRecord
	for rows.Next() {
		var s entity.SalaryRecord
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Period, &s.GrossPay, &s.Deductions, &s.NetPay, &s.PaidAt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan salary record: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
