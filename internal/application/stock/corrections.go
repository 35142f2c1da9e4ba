package stock

import (
	"github.com/shopspring/decimal"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
)

// The June receipt against PO #74 was keyed in short: pregabalin (#18) and
// Winam syrup (#26) were delivered in full but only the first carton was
// booked. This batch adds the missing quantities back and overwrites the
// received figures on the two order lines with the counted totals.
const po74ReceiptFixLabel = "po-74-receipt-fix"

const (
	pregabalinItemID = 18
	winamItemID      = 26
	fixPurchaseOrder = 74
)

// PO74ReceiptFix returns the known correction batch for the botched PO #74
// receipt, as a replayable record rather than inline mutations.
func PO74ReceiptFix() entity.CorrectionBatch {
	return entity.CorrectionBatch{
		Label: po74ReceiptFixLabel,
		Steps: []entity.CorrectionStep{
			{
				Slug:              "pregabalin",
				StockItemID:       pregabalinItemID,
				Delta:             decimal.NewFromInt(2500),
				PurchaseOrderID:   fixPurchaseOrder,
				TargetReceivedQty: decimal.NewFromInt(2500),
			},
			{
				Slug:              "winam",
				StockItemID:       winamItemID,
				Delta:             decimal.NewFromInt(1000),
				PurchaseOrderID:   fixPurchaseOrder,
				TargetReceivedQty: decimal.NewFromInt(1000),
			},
		},
	}
}
