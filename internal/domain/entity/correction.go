package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CorrectionStep describes one inventory discrepancy to repair: add Delta to
// the item's current stock and overwrite the received quantity on the matching
// purchase order line with TargetReceivedQty.
type CorrectionStep struct {
	Slug              string // short name used in result payloads, e.g. "pregabalin"
	StockItemID       int64
	Delta             decimal.Decimal
	PurchaseOrderID   int64
	TargetReceivedQty decimal.Decimal
}

// CorrectionBatch is a named, replayable set of correction steps.
type CorrectionBatch struct {
	Label string
	Steps []CorrectionStep
}

// StockCorrection is the audit record of an applied batch: who ran it, when,
// whether it ran atomically, and the resulting quantities per item.
type StockCorrection struct {
	ID        string
	Label     string
	Steps     []CorrectionStep
	Results   map[string]decimal.Decimal // slug -> resulting current_stock
	Atomic    bool
	AppliedBy string
	AppliedAt time.Time
}
