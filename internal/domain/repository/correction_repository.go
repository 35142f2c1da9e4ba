package repository

import "github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"

// CorrectionRepository stores the audit trail of applied stock corrections so
// every repair stays a replayable, attributable record instead of a one-off.
type CorrectionRepository interface {
	Create(c *entity.StockCorrection) error
	List(limit, offset int) ([]*entity.StockCorrection, error)
}
