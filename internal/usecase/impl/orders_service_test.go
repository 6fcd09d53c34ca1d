package impl

import (
	"context"
	"testing"

	"pristol/internal/domain/constants"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/domain/repository"
	"pristol/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrders(t *testing.T) usecase.OrdersUsecase {
	t.Helper()

	store := newFakeStore()
	store.seed(constants.CollectionOrders,
		repository.Document{ID: "o1", Data: map[string]any{"customerName": "Alice", "totalAmount": 100.0, "status": "delivered"}},
		repository.Document{ID: "o2", Data: map[string]any{"customerName": "Bob", "totalAmount": 50.0, "status": "pending"}},
		repository.Document{ID: "o3", Data: map[string]any{"customerName": "Carol", "totalAmount": 75.0, "status": "shipped"}},
		repository.Document{ID: "o4", Data: map[string]any{"customerName": "Dan", "totalAmount": 25.0}},
	)

	sync, _ := newTestSync(store)
	sync.Refresh(context.Background())

	return NewOrdersService(sync, discardLogger())
}

func TestOrdersService_FilterOrders(t *testing.T) {
	orders := newTestOrders(t)

	assert.Len(t, orders.FilterOrders(""), 4)
	assert.Len(t, orders.FilterOrders("all"), 4)

	// o4 has no stored status and defaults to pending.
	pending := orders.FilterOrders("pending")
	require.Len(t, pending, 2)

	delivered := orders.FilterOrders("delivered")
	require.Len(t, delivered, 1)
	assert.Equal(t, "o1", delivered[0].ID)

	assert.Empty(t, orders.FilterOrders("cancelled"))
}

func TestOrdersService_OrderByID(t *testing.T) {
	orders := newTestOrders(t)

	order, err := orders.OrderByID("o2")
	require.NoError(t, err)
	assert.Equal(t, "Bob", order.CustomerName)

	_, err = orders.OrderByID("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrdersService_TotalRevenue(t *testing.T) {
	orders := newTestOrders(t)

	// Only the delivered order counts toward revenue.
	assert.InDelta(t, 100.0, orders.TotalRevenue(), 0.001)
}

func TestOrdersService_PendingCount(t *testing.T) {
	orders := newTestOrders(t)

	assert.Equal(t, 2, orders.PendingCount())
}
