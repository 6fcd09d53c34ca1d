package impl

import (
	"log/slog"

	"pristol/internal/usecase"
)

// dashboardService implements the DashboardUsecase interface by composing
// the other read-side projections.
type dashboardService struct {
	sync    usecase.SyncUsecase
	catalog usecase.CatalogUsecase
	orders  usecase.OrdersUsecase
	inbox   usecase.InboxUsecase
	logger  *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	sync usecase.SyncUsecase,
	catalog usecase.CatalogUsecase,
	orders usecase.OrdersUsecase,
	inbox usecase.InboxUsecase,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		sync:    sync,
		catalog: catalog,
		orders:  orders,
		inbox:   inbox,
		logger:  logger,
	}
}

// Stats recomputes the dashboard aggregates from current collection state.
func (srv *dashboardService) Stats() *usecase.DashboardStats {
	return &usecase.DashboardStats{
		TotalProducts:    len(srv.sync.Products()),
		TotalOrders:      len(srv.sync.Orders()),
		TotalMessages:    len(srv.sync.Messages()),
		TotalRevenue:     srv.orders.TotalRevenue(),
		PendingOrders:    srv.orders.PendingCount(),
		UnreadMessages:   srv.inbox.UnreadCount(),
		LowStockProducts: srv.catalog.LowStockCount(),
	}
}
