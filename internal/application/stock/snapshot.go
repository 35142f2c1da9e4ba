package stock

import (
	"context"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
)

// SnapshotUseCase gates the opening-stock capture behind caller verification.
// The verifier runs with the caller's own privilege; only after it succeeds
// does the elevated invoker fire the stored procedure.
type SnapshotUseCase struct {
	verifier TokenVerifier
	invoker  SnapshotInvoker
}

// NewSnapshotUseCase builds the use case from the two capabilities.
func NewSnapshotUseCase(verifier TokenVerifier, invoker SnapshotInvoker) *SnapshotUseCase {
	return &SnapshotUseCase{verifier: verifier, invoker: invoker}
}

// Capture verifies the bearer token and invokes the snapshot procedure.
// Returns ErrForbidden for a token the identity subsystem rejects; anything
// else is an operational failure from the store, surfaced as-is.
// Repeated calls always attempt a fresh capture; dedup is not this layer's job.
func (uc *SnapshotUseCase) Capture(ctx context.Context, token string) error {
	user, err := uc.verifier.VerifySession(ctx, token)
	if err != nil || user == nil {
		return domain.ErrForbidden
	}
	// The store's error text goes back to the caller verbatim, so no wrapping.
	return uc.invoker.CaptureOpeningStock(ctx)
}
