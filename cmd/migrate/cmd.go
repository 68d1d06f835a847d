// Command migrate rewrites the stored document in the current format and
// assigns ids to systems saved before ids existed.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/GregMSThompson/startpage/internal/bootstrap"
	"github.com/GregMSThompson/startpage/internal/config"
	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/internal/services"
	"github.com/GregMSThompson/startpage/pkg/logger"
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

	ctx := logger.ToContext(context.Background(), bs.Log)
	docs := services.NewDocumentService(bs.Documents, bs.Metrics)

	// an applied no-op persists the normalised document and back-filled ids
	var pages, systems int
	_, err = docs.Mutate(ctx, "migrate", func(_ context.Context, doc *models.Document) (dto.Result, error) {
		pages, systems = len(doc.Pages), len(doc.Systems)
		return dto.Applied(), nil
	})
	if err != nil {
		bs.Close()
		exitOnError("migration failed", err, bs.Log)
	}

	bs.Log.Info("document migrated", "datastore", cfg.DataStore, "pages", pages, "systems", systems)
}
