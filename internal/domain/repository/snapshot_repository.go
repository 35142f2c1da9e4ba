package repository

import (
	"time"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
)

// SnapshotRepository reads back opening-stock snapshot rows for reporting.
// Capturing a snapshot is not part of this port: that is an elevated-privilege
// capability owned by the application layer (stock.SnapshotInvoker).
type SnapshotRepository interface {
	List(limit, offset int) ([]*entity.OpeningStockSnapshot, error)
	LastCapturedAt() (*time.Time, error)
}
