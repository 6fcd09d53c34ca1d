package usecase

// DashboardStats are the aggregates shown on the dashboard overview.
type DashboardStats struct {
	TotalProducts    int     `json:"totalProducts"`
	TotalOrders      int     `json:"totalOrders"`
	TotalMessages    int     `json:"totalMessages"`
	TotalRevenue     float64 `json:"totalRevenue"` // Sum over delivered orders.
	PendingOrders    int     `json:"pendingOrders"`
	UnreadMessages   int     `json:"unreadMessages"`
	LowStockProducts int     `json:"lowStockProducts"`
}

// DashboardUsecase composes the dashboard aggregates from current state.
type DashboardUsecase interface {
	Stats() *DashboardStats
}
