package usecase

import "pristol/internal/domain/entity"

// OrdersUsecase provides the read-side projections over the order collection.
type OrdersUsecase interface {
	// FilterOrders returns orders with the given status; "all" or empty
	// matches everything.
	FilterOrders(status string) []entity.Order

	// OrderByID returns the order or ErrOrderNotFound.
	OrderByID(id string) (*entity.Order, error)

	// TotalRevenue sums the total amount of delivered orders.
	TotalRevenue() float64

	// PendingCount counts orders still in the pending state.
	PendingCount() int
}
