package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest input to register an inventory item. The legacy
// catalogue assigns integer ids, so the caller supplies one.
type CreateStockItemRequest struct {
	ID           int64           `json:"id" validate:"required,min=1"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	SupplierID   string          `json:"supplier_id"`
}

// UpdateStockItemRequest partial update (quantity changes go through
// deliveries, dispensing, or corrections, never through this).
type UpdateStockItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit         *string          `json:"unit"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	ReorderLevel *decimal.Decimal `json:"reorder_level"`
	SupplierID   *string          `json:"supplier_id"`
}

// StockItemResponse output shape for an inventory item.
type StockItemResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SnapshotRowResponse one opening-stock snapshot row.
type SnapshotRowResponse struct {
	ID          int64           `json:"id"`
	StockItemID int64           `json:"stock_item_id"`
	ItemName    string          `json:"item_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	CapturedAt  time.Time       `json:"captured_at"`
}

// CorrectionStepRequest one reconciliation step of a batch.
type CorrectionStepRequest struct {
	Slug              string          `json:"slug" validate:"required"`
	StockItemID       int64           `json:"stock_item_id" validate:"required,min=1"`
	Delta             decimal.Decimal `json:"delta"`
	PurchaseOrderID   int64           `json:"purchase_order_id" validate:"required,min=1"`
	TargetReceivedQty decimal.Decimal `json:"target_received_qty"`
}

// ApplyCorrectionRequest a reconciliation batch submitted over HTTP.
type ApplyCorrectionRequest struct {
	Label  string                  `json:"label" validate:"required"`
	Atomic *bool                   `json:"atomic"` // nil = server default
	Steps  []CorrectionStepRequest `json:"steps" validate:"required,min=1"`
}
