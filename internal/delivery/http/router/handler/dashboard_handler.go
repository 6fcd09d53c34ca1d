package handler

import (
	"log/slog"
	"net/http"

	"pristol/internal/delivery/http/response"
	"pristol/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler holds dependencies for the dashboard overview handlers.
type DashboardHandler struct {
	sync      usecase.SyncUsecase
	dashboard usecase.DashboardUsecase
	logger    *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(sync usecase.SyncUsecase, dashboard usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		sync:      sync,
		dashboard: dashboard,
		logger:    logger,
	}
}

// Stats returns the dashboard overview aggregates.
func (h *DashboardHandler) Stats(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dashboard.Stats(), "")
}

// Refresh re-fetches all collections from the remote store.
func (h *DashboardHandler) Refresh(c echo.Context) error {
	h.sync.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]bool{"loading": h.sync.Loading()}, "Collections refreshed")
}

// Loading reports whether a refresh or the initial snapshot is in flight.
func (h *DashboardHandler) Loading(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{"loading": h.sync.Loading()}, "")
}
