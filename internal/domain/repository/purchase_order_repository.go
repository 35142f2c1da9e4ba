package repository

import (
	"github.com/shopspring/decimal"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
)

// PurchaseOrderRepository is the port for purchase orders and their lines.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder, items []entity.PurchaseOrderItem) error
	GetByID(id int64) (*entity.PurchaseOrder, []entity.PurchaseOrderItem, error)
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	GetItem(poID, stockItemID int64) (*entity.PurchaseOrderItem, error)
	// GetItemForUpdate locks the line (SELECT FOR UPDATE).
	GetItemForUpdate(poID, stockItemID int64) (*entity.PurchaseOrderItem, error)
	// SetReceivedQty overwrites received_quantity on the line (not an increment).
	SetReceivedQty(poID, stockItemID int64, qty decimal.Decimal) error
	UpdateStatus(id int64, status string) error
}
