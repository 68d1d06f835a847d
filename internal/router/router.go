package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/startpage/internal/handlers"
	"github.com/GregMSThompson/startpage/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	vh := handlers.NewViewHandlers(deps)
	sh := handlers.NewSystemHandlers(deps)
	ph := handlers.NewPageHandlers(deps)
	seth := handlers.NewSettingsHandlers(deps)
	ih := handlers.NewImageHandlers(deps)

	r.Get("/", vh.Index)

	admin := sh.SystemRoutes()
	admin.Get("/", vh.Admin)
	admin.Post("/settings", seth.UpdateSettings)
	admin.Mount("/pages", ph.PageRoutes())
	r.Mount("/admin", admin)

	r.Get("/static/img/{filename}", ih.ServeImage)
	r.Get("/healthz", handlers.Health)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}
	return r
}
