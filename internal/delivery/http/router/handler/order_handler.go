package handler

import (
	"log/slog"
	"net/http"

	"pristol/internal/delivery/http/response"
	"pristol/internal/domain/entity"
	"pristol/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	sync   usecase.SyncUsecase
	orders usecase.OrdersUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(sync usecase.SyncUsecase, orders usecase.OrdersUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		sync:   sync,
		orders: orders,
		logger: logger,
	}
}

// updateOrderStatusRequest carries the new fulfillment status.
type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders returns orders filtered by fulfillment status.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	status := c.QueryParam("status")

	return response.Success(c, http.StatusOK, h.orders.FilterOrders(status), "")
}

// GetOrder returns a single order by ID.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orders.OrderByID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// UpdateOrderStatus sets the fulfillment status of an order.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req *updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	err := h.sync.UpdateOrderStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated successfully")
}

// OrderSummary returns the revenue and pending-order aggregates.
func (h *OrderHandler) OrderSummary(c echo.Context) error {
	summary := map[string]any{
		"totalRevenue":  h.orders.TotalRevenue(),
		"pendingOrders": h.orders.PendingCount(),
	}

	return response.Success(c, http.StatusOK, summary, "")
}
