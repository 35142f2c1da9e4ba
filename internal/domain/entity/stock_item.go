package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is an inventory record tracked by quantity on hand.
// Integer IDs come from the legacy catalogue and are kept stable so purchase
// order lines and historical corrections keep referring to the same items.
type StockItem struct {
	ID           int64
	Name         string
	Unit         string // tablets, bottles, boxes...
	UnitPrice    decimal.Decimal
	CurrentStock decimal.Decimal
	ReorderLevel decimal.Decimal
	SupplierID   string // optional, empty when unsourced
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelowReorderLevel reports whether the item needs restocking.
func (s *StockItem) BelowReorderLevel() bool {
	return s.CurrentStock.LessThanOrEqual(s.ReorderLevel)
}
