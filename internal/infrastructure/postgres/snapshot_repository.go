package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo reads opening-stock snapshot rows. It runs on the user-scoped
// pool; capturing snapshots is SnapshotInvoker's job on the elevated pool.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository builds the read-only snapshot adapter.
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// List returns snapshot rows, newest capture first.
func (r *SnapshotRepo) List(limit, offset int) ([]*entity.OpeningStockSnapshot, error) {
	query := `
		SELECT s.id, s.stock_item_id, COALESCE(i.name, ''), s.quantity, s.captured_at
		FROM opening_stock_snapshots s
		LEFT JOIN stock_items i ON i.id = s.stock_item_id
		ORDER BY s.captured_at DESC, s.stock_item_id
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var list []*entity.OpeningStockSnapshot
	for rows.Next() {
		var s entity.OpeningStockSnapshot
		if err := rows.Scan(&s.ID, &s.StockItemID, &s.ItemName, &s.Quantity, &s.CapturedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LastCapturedAt returns the time of the most recent capture, nil when none exists.
func (r *SnapshotRepo) LastCapturedAt() (*time.Time, error) {
	var t *time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT max(captured_at) FROM opening_stock_snapshots`).Scan(&t)
	if err != nil {
		return nil, fmt.Errorf("last snapshot time: %w", err)
	}
	return t, nil
}
