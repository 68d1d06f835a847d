package handlers

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/response"
)

type viewService interface {
	Index(ctx context.Context, pageID string) (dto.IndexView, error)
	Admin(ctx context.Context) (dto.AdminView, error)
}

type viewHandlers struct {
	ResponseHandler response.ResponseHandler
	ViewSvc         viewService
}

func NewViewHandlers(deps *Deps) *viewHandlers {
	return &viewHandlers{
		ResponseHandler: deps.ResponseHandler,
		ViewSvc:         deps.ViewSvc,
	}
}

func (h *viewHandlers) Index(w http.ResponseWriter, r *http.Request) {
	view, err := h.ViewSvc.Index(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}

func (h *viewHandlers) Admin(w http.ResponseWriter, r *http.Request) {
	view, err := h.ViewSvc.Admin(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}
