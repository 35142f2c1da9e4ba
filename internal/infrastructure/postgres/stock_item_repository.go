package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implements StockItemRepository over PostgreSQL (pool or tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository builds the stock adapter. Pass a pool or tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, name, unit, unit_price, current_stock, reorder_level, COALESCE(supplier_id::text, ''), created_at, updated_at`

// Get reads a stock item. A missing row comes back as a zero-quantity item.
func (r *StockItemRepo) Get(id int64) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), id, "get stock item")
}

// GetForUpdate reads a stock item and locks the row (SELECT FOR UPDATE).
func (r *StockItemRepo) GetForUpdate(id int64) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), id, "get stock item for update")
}

func (r *StockItemRepo) scanOne(row pgx.Row, id int64, op string) (*entity.StockItem, error) {
	var s entity.StockItem
	err := row.Scan(
		&s.ID, &s.Name, &s.Unit, &s.UnitPrice, &s.CurrentStock, &s.ReorderLevel,
		&s.SupplierID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockItem{ID: id, CurrentStock: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Create persists a new stock item.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, name, unit, unit_price, current_stock, reorder_level, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.UnitPrice, item.CurrentStock, item.ReorderLevel,
		item.SupplierID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert stock item %d: %w", item.ID, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// Update persists name/unit/price/reorder changes (not quantity).
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $2, unit = $3, unit_price = $4, reorder_level = $5,
		    supplier_id = NULLIF($6, '')::uuid, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.UnitPrice, item.ReorderLevel, item.SupplierID,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// SetQuantity overwrites current_stock. No affected-row check: updating an
// absent row is a quiet no-op, the same as an update-by-predicate against the
// hosted store.
func (r *StockItemRepo) SetQuantity(id int64, qty decimal.Decimal) error {
	query := `UPDATE stock_items SET current_stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, qty)
	if err != nil {
		return fmt.Errorf("set stock quantity: %w", err)
	}
	return nil
}

// List returns stock items ordered by name.
func (r *StockItemRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var items []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Unit, &s.UnitPrice, &s.CurrentStock, &s.ReorderLevel,
			&s.SupplierID, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
