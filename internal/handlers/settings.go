package handlers

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/response"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

type settingsService interface {
	UpdateSettings(ctx context.Context, req dto.SettingsRequest) (dto.Result, error)
}

type settingsHandlers struct {
	ResponseHandler response.ResponseHandler
	SettingsSvc     settingsService
}

func NewSettingsHandlers(deps *Deps) *settingsHandlers {
	return &settingsHandlers{
		ResponseHandler: deps.ResponseHandler,
		SettingsSvc:     deps.SettingsSvc,
	}
}

// UpdateSettings distinguishes an omitted field from one submitted blank.
func (h *settingsHandlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.FromContext(r.Context()).Warn("unreadable settings form", "error", err)
		h.ResponseHandler.Redirect(w, r, adminPath)
		return
	}
	req := dto.SettingsRequest{
		SearchEnabled:     r.PostFormValue("search_enabled"),
		SearchBaseURL:     formValue(r, "search_base_url"),
		SearchPlaceholder: formValue(r, "search_placeholder"),
		SearchWidth:       formValue(r, "search_width"),
		FooterText:        formValue(r, "footer_text"),
	}
	res, err := h.SettingsSvc.UpdateSettings(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	logResult(r, "update_settings", res)
	h.ResponseHandler.Redirect(w, r, adminPath)
}
