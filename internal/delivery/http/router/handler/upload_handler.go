package handler

import (
	"log/slog"
	"net/http"

	"pristol/internal/delivery/http/response"
	"pristol/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for the image upload handler.
type UploadHandler struct {
	uploadSvc service.UploadService
	logger    *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uploadSvc service.UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploadSvc: uploadSvc,
		logger:    logger,
	}
}

// UploadImage stores a product image and returns its public URL. The image
// arrives as the "image" field of a multipart form.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	result, err := h.uploadSvc.Upload(c.Request().Context(), &service.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Image uploaded successfully")
}
