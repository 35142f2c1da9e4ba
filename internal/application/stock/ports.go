package stock

import (
	"context"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// TxRunner runs a callback inside one store transaction, with repositories
// bound to that transaction. Used for atomic reconciliation batches.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		poRepo repository.PurchaseOrderRepository,
		corrRepo repository.CorrectionRepository,
	) error) error
}

// TokenVerifier resolves a bearer token to a user identity using a
// user-scoped credential. It must never be backed by the elevated handle.
type TokenVerifier interface {
	VerifySession(ctx context.Context, token string) (*entity.User, error)
}

// SnapshotInvoker is the elevated capability: it invokes the opening-stock
// snapshot procedure and nothing else.
type SnapshotInvoker interface {
	CaptureOpeningStock(ctx context.Context) error
}
