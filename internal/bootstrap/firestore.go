package bootstrap

import (
	"context"
	"errors"
	"os"

	"cloud.google.com/go/firestore"
)

// InitFirestore connects to Firestore. A project id is required unless the
// client talks to the emulator.
func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
			return nil, errors.New("PROJECTID is required for the firestore datastore")
		}
		projectID = "startpage-local"
	}
	return firestore.NewClient(ctx, projectID)
}
