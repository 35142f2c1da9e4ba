package postgres

import (
	"context"
	"fmt"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implements the read-only dashboard queries over PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// Counts returns the headline dashboard numbers in one round trip.
func (r *AnalyticsRepo) Counts() (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT count(*) FROM patients),
			(SELECT count(*) FROM stock_items),
			(SELECT count(*) FROM purchase_orders WHERE status <> 'received'),
			(SELECT count(*) FROM prescriptions WHERE status = 'pending')`
	var c repository.DashboardCounts
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.Patients, &c.StockItems, &c.OpenPurchaseOrders, &c.PendingRx,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// LowStockItems returns items at or below their reorder level.
func (r *AnalyticsRepo) LowStockItems(limit int) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items
		WHERE current_stock <= reorder_level
		ORDER BY current_stock / NULLIF(reorder_level, 0) NULLS FIRST, name
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()

	var items []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Unit, &s.UnitPrice, &s.CurrentStock, &s.ReorderLevel,
			&s.SupplierID, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
