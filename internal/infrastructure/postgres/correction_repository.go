package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

var _ repository.CorrectionRepository = (*CorrectionRepo)(nil)

// CorrectionRepo implements the CorrectionRepository port over PostgreSQL (pool or tx).
// Steps and results are stored as JSONB so the audit row replays without joins.
type CorrectionRepo struct {
	q Querier
}

// NewCorrectionRepository builds the adapter. Pass a pool or tx (Querier).
func NewCorrectionRepository(q Querier) *CorrectionRepo {
	return &CorrectionRepo{q: q}
}

// Create persists an applied correction batch.
func (r *CorrectionRepo) Create(c *entity.StockCorrection) error {
	steps, err := json.Marshal(c.Steps)
	if err != nil {
		return fmt.Errorf("marshal correction steps: %w", err)
	}
	results, err := json.Marshal(c.Results)
	if err != nil {
		return fmt.Errorf("marshal correction results: %w", err)
	}
	query := `
		INSERT INTO stock_corrections (id, label, steps, results, atomic, applied_by, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		c.ID, c.Label, steps, results, c.Atomic, c.AppliedBy, c.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock correction: %w", err)
	}
	return nil
}

// List returns applied corrections, newest first.
func (r *CorrectionRepo) List(limit, offset int) ([]*entity.StockCorrection, error) {
	query := `
		SELECT id, label, steps, results, atomic, applied_by, applied_at
		FROM stock_corrections ORDER BY applied_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock corrections: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockCorrection
	for rows.Next() {
		var c entity.StockCorrection
		var steps, results []byte
		if err := rows.Scan(&c.ID, &c.Label, &steps, &results, &c.Atomic, &c.AppliedBy, &c.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan stock correction: %w", err)
		}
		if err := json.Unmarshal(steps, &c.Steps); err != nil {
			return nil, fmt.Errorf("unmarshal correction steps: %w", err)
		}
		if err := json.Unmarshal(results, &c.Results); err != nil {
			return nil, fmt.Errorf("unmarshal correction results: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
