package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/startpage/pkg/logger"
)

func TestLoggerMiddleware_InjectsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(logger.NewCloudRunHandlerTo(&buf, slog.LevelDebug))
	m := NewLoggerMiddleware(base)

	var inner *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusSeeOther)
	})
	h := chimiddleware.RequestID(m.LoggerMiddleware(next))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/add", nil))

	if inner == nil || inner == base {
		t.Fatal("expected a request-scoped logger in the context")
	}
	out := buf.String()
	for _, want := range []string{`"request completed"`, `"status":303`, `"path":"/admin/add"`, `"request_id"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log output %s", want, out)
		}
	}
}
