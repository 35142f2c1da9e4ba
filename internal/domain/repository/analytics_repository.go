package repository

import "github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"

// DashboardCounts aggregates the headline numbers for the dashboard.
type DashboardCounts struct {
	Patients           int
	StockItems         int
	OpenPurchaseOrders int
	PendingRx          int
}

// AnalyticsRepository runs the read-only aggregate queries behind the dashboard.
type AnalyticsRepository interface {
	Counts() (*DashboardCounts, error)
	LowStockItems(limit int) ([]*entity.StockItem, error)
}
