package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/GregMSThompson/startpage/internal/blob"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/internal/store"
)

// --- Fakes ---

// fakeDocumentStore keeps the document encoded, like a real backend, and
// counts loads and saves.
type fakeDocumentStore struct {
	raw     []byte
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func newFakeDocumentStore(raw string) *fakeDocumentStore {
	return &fakeDocumentStore{raw: []byte(raw)}
}

func (f *fakeDocumentStore) Load(_ context.Context) (*models.Document, error) {
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	doc, _ := store.Decode(f.raw)
	return doc, nil
}

func (f *fakeDocumentStore) Save(_ context.Context, doc *models.Document) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := store.Encode(doc)
	if err != nil {
		return err
	}
	f.raw = data
	f.saves++
	return nil
}

// doc decodes what was last saved.
func (f *fakeDocumentStore) doc(t *testing.T) *models.Document {
	t.Helper()
	doc, err := store.Decode(f.raw)
	if err != nil {
		t.Fatalf("stored document is corrupt: %v", err)
	}
	return doc
}

type observation struct {
	operation, outcome, reason string
}

type fakeRecorder struct {
	observed []observation
}

func (f *fakeRecorder) Observe(operation, outcome, reason string, _ time.Duration) {
	f.observed = append(f.observed, observation{operation, outcome, reason})
}

type fakeImageStore struct {
	objects map[string][]byte
	putErr  error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{objects: make(map[string][]byte)}
}

func (f *fakeImageStore) Put(_ context.Context, key string, r io.Reader, opts blob.PutOptions) (blob.Info, error) {
	if f.putErr != nil {
		return blob.Info{}, f.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return blob.Info{}, err
	}
	f.objects[key] = b
	return blob.Info{Key: key, Size: int64(len(b)), ContentType: opts.ContentType}, nil
}

// sequentialIDs replaces uuid generation so image keys are predictable.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

type fakePresetSource struct {
	presets []models.Preset
	err     error
}

func (f *fakePresetSource) List(_ context.Context) ([]models.Preset, error) {
	return f.presets, f.err
}

// --- Fixtures ---

const twoPageDoc = `{
	"pages": [{"id": "default", "name": "Home"}, {"id": "work", "name": "Work"}],
	"systems": [
		{"id": "s1", "name": "Grafana", "image": "grafana.png", "pages": ["default", "work"]},
		{"id": "s2", "name": "Jenkins", "image": "generic.png", "pages": ["work"]},
		{"id": "s3", "name": "Wiki", "image": "generic.png"}
	],
	"presets": []
}`

func newTestSystemService(raw string) (*systemService, *fakeDocumentStore, *fakeImageStore) {
	fs := newFakeDocumentStore(raw)
	images := newFakeImageStore()
	resolver := NewImageResolver(images)
	resolver.newID = sequentialIDs()
	svc := NewSystemService(NewDocumentService(fs, nil), resolver)
	return svc, fs, images
}

func names(systems []models.System) []string {
	out := make([]string, len(systems))
	for i, s := range systems {
		out[i] = s.Name
	}
	return out
}

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func upload(name string) *bytes.Reader {
	return bytes.NewReader([]byte("image bytes of " + name))
}
