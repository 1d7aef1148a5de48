package handler

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/response"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler streams multipart uploads into the object store.
type UploadHandler struct {
	store service.ObjectStore
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(store service.ObjectStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts one multipart file under the "file" field. The stored object
// key is a uuid plus the original extension so uploads never collide.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file field")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	key := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	if err := h.store.Upload(c.Request().Context(), key, src, fileHeader.Size, contentType); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"filename": key}, "File uploaded")
}

// Download streams a stored object back to the client.
func (h *UploadHandler) Download(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid key")
	}

	object, err := h.store.Download(c.Request().Context(), key)
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "File not found")
	}
	defer object.Close()

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEOctetStream)
	c.Response().WriteHeader(http.StatusOK)

	_, err = io.Copy(c.Response(), object)

	return errors.WithStack(err)
}
