package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

// documentStore is the persistence contract shared by every backend.
type documentStore interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

type mutationRecorder interface {
	Observe(operation, outcome, reason string, elapsed time.Duration)
}

// mutateFunc applies one change to the loaded document. Returning a skipped
// result or an error leaves the stored document untouched.
type mutateFunc func(ctx context.Context, doc *models.Document) (dto.Result, error)

// documentService is the single read-modify-write boundary. One mutex
// serialises every load/mutate/save cycle in the process.
type documentService struct {
	store   documentStore
	metrics mutationRecorder
	mu      sync.Mutex
}

func NewDocumentService(store documentStore, metrics mutationRecorder) *documentService {
	return &documentService{store: store, metrics: metrics}
}

// Read returns a snapshot of the current document.
func (s *documentService) Read(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// Mutate loads the document, applies fn and saves the whole document when fn
// reports a change.
func (s *documentService) Mutate(ctx context.Context, operation string, fn mutateFunc) (dto.Result, error) {
	// the resolver and other callees log with the operation attached
	log, ctx := logger.With(ctx, "operation", operation)
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		log.Error("failed to load document", "error", err)
		s.observe(operation, "error", "", start)
		return dto.Result{}, err
	}
	assignSystemIDs(doc)

	res, err := fn(ctx, doc)
	if err != nil {
		log.Error("mutation failed", "error", err)
		s.observe(operation, "error", "", start)
		return dto.Result{}, err
	}
	if !res.Applied {
		log.Info("mutation skipped", "reason", res.Reason)
		s.observe(operation, res.Outcome(), res.Reason, start)
		return res, nil
	}

	if err := s.store.Save(ctx, doc); err != nil {
		log.Error("failed to save document", "error", err)
		s.observe(operation, "error", "", start)
		return dto.Result{}, err
	}
	log.Debug("mutation applied", "id", res.ID)
	s.observe(operation, res.Outcome(), "", start)
	return res, nil
}

// Skip records an outcome rejected before the document is loaded, the same
// way Mutate records a skip.
func (s *documentService) Skip(ctx context.Context, operation, reason string) dto.Result {
	logger.FromContext(ctx).Info("mutation skipped", "operation", operation, "reason", reason)
	s.observe(operation, "skipped", reason, time.Now())
	return dto.Skipped(reason)
}

func (s *documentService) observe(operation, outcome, reason string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.Observe(operation, outcome, reason, time.Since(start))
}

// assignSystemIDs gives legacy systems a stable id. The ids are persisted
// with the next applied mutation.
func assignSystemIDs(doc *models.Document) {
	for i := range doc.Systems {
		if doc.Systems[i].ID == "" {
			doc.Systems[i].ID = uuid.New().String()
		}
	}
}
