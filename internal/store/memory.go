package store

import (
	"context"
	"sync"

	"github.com/GregMSThompson/startpage/internal/errs"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

// memoryStore keeps the encoded document in process memory. It goes through
// the same Decode/Encode path as the persistent backends.
type memoryStore struct {
	mu  sync.Mutex
	raw []byte
}

// NewMemoryStore returns a store seeded with raw, which may be nil.
func NewMemoryStore(raw []byte) *memoryStore {
	return &memoryStore{raw: append([]byte(nil), raw...)}
}

func (s *memoryStore) Load(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	raw := append([]byte(nil), s.raw...)
	s.mu.Unlock()

	doc, err := Decode(raw)
	if err != nil {
		logger.FromContext(ctx).Warn("stored document corrupt, using empty document", "error", err)
	}
	return doc, nil
}

func (s *memoryStore) Save(_ context.Context, doc *models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return errs.NewDatabaseError("write", "failed to encode document", err)
	}
	s.mu.Lock()
	s.raw = data
	s.mu.Unlock()
	return nil
}

// Raw returns a copy of the last saved payload.
func (s *memoryStore) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.raw...)
}
