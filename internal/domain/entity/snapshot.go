package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningStockSnapshot is one row of a point-in-time capture of inventory
// quantities, used as the baseline for the next accounting period. Rows are
// created store-side by the capture_opening_stock() procedure; the application
// only reads them back for reporting.
type OpeningStockSnapshot struct {
	ID          int64
	StockItemID int64
	ItemName    string
	Quantity    decimal.Decimal
	CapturedAt  time.Time
}
