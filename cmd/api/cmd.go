package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/GregMSThompson/startpage/internal/bootstrap"
	"github.com/GregMSThompson/startpage/internal/config"
	"github.com/GregMSThompson/startpage/internal/handlers"
	"github.com/GregMSThompson/startpage/internal/response"
	"github.com/GregMSThompson/startpage/internal/router"
	"github.com/GregMSThompson/startpage/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// services
	docs := services.NewDocumentService(bs.Documents, bs.Metrics)
	images := services.NewImageResolver(bs.Images)
	pserv := services.NewPageService(docs)
	sserv := services.NewSystemService(docs, images)
	setserv := services.NewSettingsService(docs)
	vserv := services.NewViewService(docs, bs.Presets)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.PageSvc = pserv
	deps.SystemSvc = sserv
	deps.SettingsSvc = setserv
	deps.ViewSvc = vserv
	deps.Images = bs.Images
	deps.Metrics = bs.Metrics.Handler()
	deps.MaxUploadBytes = cfg.MaxUploadBytes

	// router
	r := router.NewRouter(deps)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	bs.Log.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		bs.Close()
		exitOnError("server start failed", err, bs.Log)
	}
}
