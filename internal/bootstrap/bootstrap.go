package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/startpage/internal/blob"
	"github.com/GregMSThompson/startpage/internal/config"
	"github.com/GregMSThompson/startpage/internal/metrics"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/internal/store"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

type documentStore interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

type presetCatalog interface {
	List(ctx context.Context) ([]models.Preset, error)
}

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Documents documentStore
	Images    blob.Store
	Presets   presetCatalog
	Metrics   *metrics.Recorder
	closers   []io.Closer
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	ctx := logger.ToContext(applicationCtx, bs.Log)

	bs.Documents, err = bs.initDocuments(ctx, cfg)
	if err != nil {
		return bs, err
	}
	bs.Images, err = initImages(ctx, cfg)
	if err != nil {
		// the document store may already hold an open handle
		bs.Close()
		return bs, err
	}
	bs.Presets = store.NewPresetCatalog(cfg.PresetFile)
	bs.Metrics = metrics.New()

	bs.Log.Info("bootstrap complete",
		"datastore", cfg.DataStore,
		"imagestore", string(bs.Images.Driver()))
	return bs, nil
}

func (bs *Bootstrap) initDocuments(ctx context.Context, cfg *config.Config) (documentStore, error) {
	switch cfg.DataStore {
	case config.DataStoreFile:
		return store.NewFileStore(cfg.DataFile), nil
	case config.DataStoreMemory:
		return store.NewMemoryStore(nil), nil
	case config.DataStoreFirestore:
		client, err := InitFirestore(ctx, cfg.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("init firestore: %w", err)
		}
		bs.Firestore = client
		bs.closers = append(bs.closers, client)
		return store.NewFirestoreStore(client, cfg.FirestoreCollection), nil
	case config.DataStoreSQLite:
		s, err := store.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		bs.closers = append(bs.closers, s)
		return s, nil
	case config.DataStorePostgres:
		s, err := store.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		bs.closers = append(bs.closers, s)
		return s, nil
	}
	return nil, fmt.Errorf("unknown DATASTORE %q", cfg.DataStore)
}

func initImages(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.ImageStore {
	case config.ImageStoreFilesystem:
		return blob.NewFilesystem(cfg.ImageDir)
	case config.ImageStoreMemory:
		return blob.NewMemory(), nil
	case config.ImageStoreS3:
		return blob.NewS3(ctx, blob.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			Prefix:    cfg.S3Prefix,
			PathStyle: cfg.S3PathStyle,
		})
	}
	return nil, fmt.Errorf("unknown IMAGESTORE %q", cfg.ImageStore)
}

// Close releases backend connections in reverse order of creation.
func (bs *Bootstrap) Close() {
	for i := len(bs.closers) - 1; i >= 0; i-- {
		if err := bs.closers[i].Close(); err != nil && bs.Log != nil {
			bs.Log.Warn("failed to close backend", "error", err)
		}
	}
	bs.closers = nil
}
