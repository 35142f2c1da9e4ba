package procurement

import (
	"context"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// TxRunner runs a callback inside a transaction with the repos delivery
// receipt needs. Stock increments and line updates must land together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		poRepo repository.PurchaseOrderRepository,
		corrRepo repository.CorrectionRepository,
	) error) error
}
