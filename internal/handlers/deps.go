package handlers

import (
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/startpage/internal/response"
)

// defaultMaxUploadBytes bounds a multipart system form when Deps leaves it unset.
const defaultMaxUploadBytes = 10 << 20

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	PageSvc         pageService
	SystemSvc       systemService
	SettingsSvc     settingsService
	ViewSvc         viewService
	Images          imageSource
	Metrics         http.Handler
	MaxUploadBytes  int64
}

func (d *Deps) maxUploadBytes() int64 {
	if d.MaxUploadBytes <= 0 {
		return defaultMaxUploadBytes
	}
	return d.MaxUploadBytes
}
