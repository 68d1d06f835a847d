package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/startpage/internal/errs"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

func newTestHandler() *responseHandler {
	return New(slog.New(logger.NewTestHandler(slog.LevelInfo)))
}

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{errs.NewNotFoundError("image not found"), http.StatusNotFound, "not_found"},
		{errs.NewValidationError("bad form"), http.StatusBadRequest, "invalid_input"},
		{errs.NewDatabaseError("read", "failed to get document", errors.New("unavailable")), http.StatusInternalServerError, "internal_error"},
		{fmt.Errorf("add system: %w", errs.NewImageError("a.png", "failed", errors.New("denied"))), http.StatusInternalServerError, "image_error"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		newTestHandler().HandleError(rr, req, tc.err)

		if rr.Code != tc.status {
			t.Errorf("%v: expected status %d, got %d", tc.err, tc.status, rr.Code)
		}
		var body ErrorResponse
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if body.Code != tc.code {
			t.Errorf("%v: expected code %q, got %q", tc.err, tc.code, body.Code)
		}
	}
}

func TestWriteSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	newTestHandler().WriteSuccess(rr, req, http.StatusOK, map[string]string{"status": "ok"})

	if rr.Code != http.StatusOK || rr.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Header().Get("Content-Type"))
	}
	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !env.Success || env.Data["status"] != "ok" {
		t.Errorf("unexpected envelope %+v", env)
	}
}

func TestRedirect(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/add", nil)
	newTestHandler().Redirect(rr, req, "/admin")

	if rr.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin" {
		t.Errorf("expected /admin, got %q", loc)
	}
}
