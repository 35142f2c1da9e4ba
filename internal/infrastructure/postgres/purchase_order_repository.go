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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implements PurchaseOrderRepository over PostgreSQL (pool or tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository builds the adapter. Pass a pool or tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persists an order and its lines.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder, items []entity.PurchaseOrderItem) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (supplier_id, status, ordered_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		po.SupplierID, po.Status, po.OrderedAt, po.CreatedBy, po.CreatedAt, po.UpdatedAt,
	).Scan(&po.ID)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}

	lineQuery := `
		INSERT INTO purchase_order_items (purchase_order_id, stock_item_id, ordered_qty, received_qty, unit_cost)
		VALUES ($1, $2, $3, $4, $5)`
	for i := range items {
		items[i].PurchaseOrderID = po.ID
		if _, err := r.q.Exec(ctx, lineQuery,
			po.ID, items[i].StockItemID, items[i].OrderedQty, items[i].ReceivedQty, items[i].UnitCost,
		); err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID returns an order with its lines, or ErrNotFound.
func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, []entity.PurchaseOrderItem, error) {
	ctx := context.Background()
	query := `
		SELECT id, supplier_id, status, ordered_at, created_by, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&po.ID, &po.SupplierID, &po.Status, &po.OrderedAt, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get purchase order: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT purchase_order_id, stock_item_id, ordered_qty, received_qty, unit_cost
		FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY stock_item_id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get purchase order items: %w", err)
	}
	defer rows.Close()

	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.PurchaseOrderID, &it.StockItemID, &it.OrderedQty, &it.ReceivedQty, &it.UnitCost); err != nil {
			return nil, nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, it)
	}
	return &po, items, rows.Err()
}

// List returns orders, newest first.
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, status, ordered_at, created_by, created_at, updated_at
		FROM purchase_orders ORDER BY ordered_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var pos []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.SupplierID, &po.Status, &po.OrderedAt, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		pos = append(pos, &po)
	}
	return pos, rows.Err()
}

// GetItem returns one line, or ErrNotFound.
func (r *PurchaseOrderRepo) GetItem(poID, stockItemID int64) (*entity.PurchaseOrderItem, error) {
	return r.getItem(poID, stockItemID, false)
}

// GetItemForUpdate returns one line with the row locked (SELECT FOR UPDATE).
func (r *PurchaseOrderRepo) GetItemForUpdate(poID, stockItemID int64) (*entity.PurchaseOrderItem, error) {
	return r.getItem(poID, stockItemID, true)
}

func (r *PurchaseOrderRepo) getItem(poID, stockItemID int64, lock bool) (*entity.PurchaseOrderItem, error) {
	query := `
		SELECT purchase_order_id, stock_item_id, ordered_qty, received_qty, unit_cost
		FROM purchase_order_items WHERE purchase_order_id = $1 AND stock_item_id = $2`
	if lock {
		query += ` FOR UPDATE`
	}
	var it entity.PurchaseOrderItem
	err := r.q.QueryRow(context.Background(), query, poID, stockItemID).Scan(
		&it.PurchaseOrderID, &it.StockItemID, &it.OrderedQty, &it.ReceivedQty, &it.UnitCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get purchase order item: %w", err)
	}
	return &it, nil
}

// SetReceivedQty overwrites received_qty on a line. A quiet no-op for absent
// lines, matching update-by-predicate semantics.
func (r *PurchaseOrderRepo) SetReceivedQty(poID, stockItemID int64, qty decimal.Decimal) error {
	query := `
		UPDATE purchase_order_items SET received_qty = $3
		WHERE purchase_order_id = $1 AND stock_item_id = $2`
	_, err := r.q.Exec(context.Background(), query, poID, stockItemID, qty)
	if err != nil {
		return fmt.Errorf("set received qty: %w", err)
	}
	return nil
}

// UpdateStatus moves an order between open/partial/received.
func (r *PurchaseOrderRepo) UpdateStatus(id int64, status string) error {
	query := `UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}
