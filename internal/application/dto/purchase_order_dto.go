package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest one line of a new purchase order.
type PurchaseOrderItemRequest struct {
	StockItemID int64           `json:"stock_item_id" validate:"required,min=1"`
	OrderedQty  decimal.Decimal `json:"ordered_qty"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest input to place an order with a supplier.
type CreatePurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id" validate:"required,uuid"`
	Items      []PurchaseOrderItemRequest `json:"items" validate:"required,min=1"`
}

// ReceiveDeliveryRequest records a (possibly partial) delivery against one line.
type ReceiveDeliveryRequest struct {
	StockItemID int64           `json:"stock_item_id" validate:"required,min=1"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// PurchaseOrderItemResponse one line with ordered vs received quantities.
type PurchaseOrderItemResponse struct {
	StockItemID int64           `json:"stock_item_id"`
	OrderedQty  decimal.Decimal `json:"ordered_qty"`
	ReceivedQty decimal.Decimal `json:"received_qty"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrderResponse output shape for a purchase order.
type PurchaseOrderResponse struct {
	ID         int64                       `json:"id"`
	SupplierID string                      `json:"supplier_id"`
	Status     string                      `json:"status"`
	OrderedAt  time.Time                   `json:"ordered_at"`
	CreatedBy  string                      `json:"created_by"`
	Items      []PurchaseOrderItemResponse `json:"items,omitempty"`
}
