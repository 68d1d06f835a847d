package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/response"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

type pageService interface {
	AddPage(ctx context.Context, name string) (dto.Result, error)
	DeletePage(ctx context.Context, id string) (dto.Result, error)
}

type pageHandlers struct {
	ResponseHandler response.ResponseHandler
	PageSvc         pageService
}

func NewPageHandlers(deps *Deps) *pageHandlers {
	return &pageHandlers{
		ResponseHandler: deps.ResponseHandler,
		PageSvc:         deps.PageSvc,
	}
}

// PageRoutes is mounted under /admin/pages.
func (h *pageHandlers) PageRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/add", h.AddPage)
	r.Post("/delete/{pageID}", h.DeletePage)
	return r
}

func (h *pageHandlers) AddPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.FromContext(r.Context()).Warn("unreadable page form", "error", err)
		h.ResponseHandler.Redirect(w, r, adminPath)
		return
	}
	res, err := h.PageSvc.AddPage(r.Context(), r.PostFormValue("page_name"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	logResult(r, "add_page", res)
	h.ResponseHandler.Redirect(w, r, adminPath)
}

func (h *pageHandlers) DeletePage(w http.ResponseWriter, r *http.Request) {
	res, err := h.PageSvc.DeletePage(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	logResult(r, "delete_page", res)
	h.ResponseHandler.Redirect(w, r, adminPath)
}
