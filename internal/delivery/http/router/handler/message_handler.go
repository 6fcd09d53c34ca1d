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

// MessageHandler holds dependencies for contact-message handlers.
type MessageHandler struct {
	sync   usecase.SyncUsecase
	inbox  usecase.InboxUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(sync usecase.SyncUsecase, inbox usecase.InboxUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		sync:   sync,
		inbox:  inbox,
		logger: logger,
	}
}

// updateMessageStatusRequest carries the new handling status.
type updateMessageStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListMessages returns contact messages filtered by handling status.
func (h *MessageHandler) ListMessages(c echo.Context) error {
	status := c.QueryParam("status")

	return response.Success(c, http.StatusOK, h.inbox.FilterMessages(status), "")
}

// UpdateMessageStatus sets the handling status of a message.
func (h *MessageHandler) UpdateMessageStatus(c echo.Context) error {
	var req *updateMessageStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	err := h.sync.UpdateMessageStatus(c.Request().Context(), c.Param("id"), entity.MessageStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message status updated successfully")
}

// MarkRead marks a message as read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	if err := h.inbox.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message marked as read")
}

// MarkReplied marks a message as replied.
func (h *MessageHandler) MarkReplied(c echo.Context) error {
	if err := h.inbox.MarkReplied(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message marked as replied")
}

// DeleteMessage removes a message from the inbox.
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	if err := h.sync.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted successfully")
}
