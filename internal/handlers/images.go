package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/startpage/internal/blob"
	"github.com/GregMSThompson/startpage/internal/errs"
	"github.com/GregMSThompson/startpage/internal/response"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

type imageSource interface {
	Get(ctx context.Context, key string) (blob.Info, io.ReadCloser, error)
}

type imageHandlers struct {
	ResponseHandler response.ResponseHandler
	Images          imageSource
}

func NewImageHandlers(deps *Deps) *imageHandlers {
	return &imageHandlers{
		ResponseHandler: deps.ResponseHandler,
		Images:          deps.Images,
	}
}

// ServeImage streams a stored image. Keys that could escape the image
// namespace are reported as missing.
func (h *imageHandlers) ServeImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "filename")
	if err := blob.ValidateKey(key); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewNotFoundError("image not found"))
		return
	}

	info, body, err := h.Images.Get(r.Context(), key)
	if errors.Is(err, blob.ErrNotFound) {
		h.ResponseHandler.HandleError(w, r, errs.NewNotFoundError("image not found"))
		return
	}
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewImageError(key, "failed to read image", err))
		return
	}
	defer body.Close()

	// the stored type may come from the uploading client
	w.Header().Set("Content-Type", blob.ContentTypeFor(key))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		logger.FromContext(r.Context()).Warn("failed to stream image", "key", key, "error", err)
	}
}
