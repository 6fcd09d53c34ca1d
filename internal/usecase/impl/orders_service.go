package impl

import (
	"log/slog"

	"pristol/internal/domain/constants"
	"pristol/internal/domain/entity"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/usecase"
)

// ordersService implements the OrdersUsecase interface as pure projections
// over the synchronized order collection.
type ordersService struct {
	sync   usecase.SyncUsecase
	logger *slog.Logger
}

// NewOrdersService is the constructor for ordersService.
func NewOrdersService(sync usecase.SyncUsecase, logger *slog.Logger) usecase.OrdersUsecase {
	return &ordersService{
		sync:   sync,
		logger: logger,
	}
}

// FilterOrders returns orders matching the status; "all" or empty matches
// everything.
func (srv *ordersService) FilterOrders(status string) []entity.Order {
	orders := srv.sync.Orders()
	if status == "" || status == constants.CategoryAll {
		return orders
	}

	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == status {
			out = append(out, o)
		}
	}

	return out
}

// OrderByID returns the order or ErrOrderNotFound.
func (srv *ordersService) OrderByID(id string) (*entity.Order, error) {
	for _, o := range srv.sync.Orders() {
		if o.ID == id {
			return &o, nil
		}
	}

	return nil, domainerrors.ErrOrderNotFound
}

// TotalRevenue sums the total amount of delivered orders.
func (srv *ordersService) TotalRevenue() float64 {
	revenue := 0.0
	for _, o := range srv.sync.Orders() {
		if o.Status == entity.OrderStatusDelivered {
			revenue += o.TotalAmount
		}
	}

	return revenue
}

// PendingCount counts orders still pending.
func (srv *ordersService) PendingCount() int {
	count := 0
	for _, o := range srv.sync.Orders() {
		if o.Status == entity.OrderStatusPending {
			count++
		}
	}

	return count
}
