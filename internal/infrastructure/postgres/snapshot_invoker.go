package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/stock"
)

var _ stock.SnapshotInvoker = (*SnapshotInvoker)(nil)

// SnapshotInvoker calls the capture_opening_stock() stored procedure on the
// privilege-elevated pool. It is the only code that touches that pool; keep it
// that way so the privilege boundary stays auditable.
type SnapshotInvoker struct {
	elevated *pgxpool.Pool
}

// NewSnapshotInvoker builds the invoker over the elevated service pool.
func NewSnapshotInvoker(elevated *pgxpool.Pool) *SnapshotInvoker {
	return &SnapshotInvoker{elevated: elevated}
}

// CaptureOpeningStock runs the snapshot procedure. The procedure copies every
// current_stock value into opening_stock_snapshots in one statement, so the
// capture is all-or-nothing; nothing is read back here.
func (s *SnapshotInvoker) CaptureOpeningStock(ctx context.Context) error {
	if _, err := s.elevated.Exec(ctx, `SELECT capture_opening_stock()`); err != nil {
		return fmt.Errorf("capture opening stock: %w", err)
	}
	return nil
}
