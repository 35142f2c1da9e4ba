package repository

import (
	"github.com/shopspring/decimal"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
)

// StockItemRepository is the port for reading/updating on-hand stock.
// Used inside transactions where consistency matters.
//
// Get and GetForUpdate return a zero-quantity item when the row is absent; the
// legacy data had catalogue gaps and callers treat unknown items as empty stock
// rather than failing mid-correction.
type StockItemRepository interface {
	Get(id int64) (*entity.StockItem, error)
	// GetForUpdate locks the row (SELECT FOR UPDATE).
	GetForUpdate(id int64) (*entity.StockItem, error)
	Create(item *entity.StockItem) error
	Update(item *entity.StockItem) error
	// SetQuantity overwrites current_stock for the item. Updating an absent row
	// is a no-op success, matching the store's update-by-predicate semantics.
	SetQuantity(id int64, qty decimal.Decimal) error
	List(limit, offset int) ([]*entity.StockItem, error)
}
