package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GregMSThompson/startpage/internal/errs"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

// fileStore keeps the document as a single JSON file.
type fileStore struct {
	path string
}

func NewFileStore(path string) *fileStore {
	if path == "" {
		path = "data.json"
	}
	return &fileStore{path: path}
}

func (s *fileStore) Load(ctx context.Context) (*models.Document, error) {
	log := logger.FromContext(ctx)

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewDocument(), nil
	}
	if err != nil {
		log.Warn("document file unreadable, using empty document", "path", s.path, "error", err)
		return models.NewDocument(), nil
	}

	doc, err := Decode(raw)
	if err != nil {
		log.Warn("document file corrupt, using empty document", "path", s.path, "error", err)
	}
	return doc, nil
}

// Save writes the document to a temp file next to the target and renames it
// into place, so readers never see a half-written document.
func (s *fileStore) Save(ctx context.Context, doc *models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return errs.NewDatabaseError("write", "failed to encode document", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.NewDatabaseError("write", "failed to create document directory", err)
	}
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return errs.NewDatabaseError("write", "failed to create temp file", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errs.NewDatabaseError("write", "failed to write document", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errs.NewDatabaseError("write", "failed to sync document", err)
	}
	if err := tmp.Close(); err != nil {
		return errs.NewDatabaseError("write", "failed to close document", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errs.NewDatabaseError("write", "failed to replace document", err)
	}
	return nil
}
