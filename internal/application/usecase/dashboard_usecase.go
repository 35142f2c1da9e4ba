package usecase

import (
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

const lowStockLimit = 10

// DashboardUseCase headline numbers for the landing screen.
type DashboardUseCase struct {
	analytics    repository.AnalyticsRepository
	snapshotRepo repository.SnapshotRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analytics repository.AnalyticsRepository, snapshotRepo repository.SnapshotRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, snapshotRepo: snapshotRepo}
}

// Summary aggregates counts, the last snapshot time, and the low-stock list.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	counts, err := uc.analytics.Counts()
	if err != nil {
		return nil, err
	}
	lastSnap, err := uc.snapshotRepo.LastCapturedAt()
	if err != nil {
		return nil, err
	}
	low, err := uc.analytics.LowStockItems(lowStockLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Patients:           counts.Patients,
		StockItems:         counts.StockItems,
		OpenPurchaseOrders: counts.OpenPurchaseOrders,
		PendingRx:          counts.PendingRx,
		LastSnapshotAt:     lastSnap,
		LowStock:           make([]dto.StockItemResponse, 0, len(low)),
	}
	for _, it := range low {
		resp.LowStock = append(resp.LowStock, *toStockItemResponse(it))
	}
	return resp, nil
}
