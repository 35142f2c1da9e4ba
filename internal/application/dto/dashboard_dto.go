package dto

import "time"

// DashboardResponse headline numbers plus the low-stock list.
type DashboardResponse struct {
	Patients           int                 `json:"patients"`
	StockItems         int                 `json:"stock_items"`
	OpenPurchaseOrders int                 `json:"open_purchase_orders"`
	PendingRx          int                 `json:"pending_prescriptions"`
	LastSnapshotAt     *time.Time          `json:"last_snapshot_at,omitempty"`
	LowStock           []StockItemResponse `json:"low_stock"`
}
