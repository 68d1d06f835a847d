package handlers

import (
	"errors"
	"net/http"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

const adminPath = "/admin"

// parseForm accepts both url-encoded and multipart bodies.
func parseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	err := r.ParseMultipartForm(maxBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}

// formValue reports whether the field was part of the submission at all.
func formValue(r *http.Request, key string) *string {
	if r.PostForm == nil {
		return nil
	}
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// logResult records the outcome of a form post before the redirect.
func logResult(r *http.Request, operation string, res dto.Result) {
	log := logger.FromContext(r.Context()).With("operation", operation)
	if res.Applied {
		log.Debug("admin change applied", "id", res.ID)
		return
	}
	log.Info("admin change ignored", "reason", res.Reason)
}
