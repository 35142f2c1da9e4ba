package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order statuses.
const (
	POStatusOpen     = "open"
	POStatusPartial  = "partial"
	POStatusReceived = "received"
)

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID         int64
	SupplierID string
	Status     string // open, partial, received
	OrderedAt  time.Time
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseOrderItem is a line on a purchase order, keyed by
// (purchase_order_id, stock_item_id). ReceivedQty tracks the cumulative
// quantity actually delivered against OrderedQty.
type PurchaseOrderItem struct {
	PurchaseOrderID int64
	StockItemID     int64
	OrderedQty      decimal.Decimal
	ReceivedQty     decimal.Decimal
	UnitCost        decimal.Decimal
}

// FullyReceived reports whether the line has been delivered in full.
func (i *PurchaseOrderItem) FullyReceived() bool {
	return i.ReceivedQty.GreaterThanOrEqual(i.OrderedQty)
}
