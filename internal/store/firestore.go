package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/startpage/internal/errs"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

const firestoreDocID = "document"

// firestoreSnapshot wraps the encoded document so Firestore and the file
// backend share one migration path.
type firestoreSnapshot struct {
	Payload   string    `firestore:"payload"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type firestoreStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreStore(client *firestore.Client, collection string) *firestoreStore {
	if collection == "" {
		collection = "startpage"
	}
	return &firestoreStore{client: client, collection: collection}
}

func (s *firestoreStore) doc() *firestore.DocumentRef {
	return s.client.Collection(s.collection).Doc(firestoreDocID)
}

func (s *firestoreStore) Load(ctx context.Context) (*models.Document, error) {
	log := logger.FromContext(ctx)

	snap, err := s.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.NewDocument(), nil
		}
		return nil, errs.NewDatabaseError("read", "failed to get document", err)
	}

	var rec firestoreSnapshot
	if err := snap.DataTo(&rec); err != nil {
		log.Warn("stored document unreadable, using empty document", "error", err)
		return models.NewDocument(), nil
	}
	doc, err := Decode([]byte(rec.Payload))
	if err != nil {
		log.Warn("stored document corrupt, using empty document", "error", err)
	}
	return doc, nil
}

func (s *firestoreStore) Save(ctx context.Context, doc *models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return errs.NewDatabaseError("write", "failed to encode document", err)
	}
	_, err = s.doc().Set(ctx, firestoreSnapshot{
		Payload:   string(data),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return errs.NewDatabaseError("write", "failed to save document", err)
	}
	return nil
}
