package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/saboracademico/backend/internal/domain"
)

const usersCollection = "usuarios"

// FirestoreUserStore reads user documents from the external Firestore
// database. This service never writes to it.
type FirestoreUserStore struct {
	client *firestore.Client
	logger *zap.Logger
}

func NewFirestoreUserStore(ctx context.Context, app *firebase.App, logger *zap.Logger) (*FirestoreUserStore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firestore client: %w", err)
	}

	return &FirestoreUserStore{
		client: client,
		logger: logger,
	}, nil
}

// UsersByRole returns every user document whose "rol" field equals role.
// Documents that fail to decode are skipped with a warning rather than
// failing the whole query.
func (s *FirestoreUserStore) UsersByRole(ctx context.Context, role string) ([]domain.UserRecord, error) {
	iter := s.client.Collection(usersCollection).Where("rol", "==", role).Documents(ctx)
	defer iter.Stop()

	var users []domain.UserRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating %s query: %w", usersCollection, err)
		}

		var u domain.UserRecord
		if err := doc.DataTo(&u); err != nil {
			s.logger.Warn("skipping undecodable user document",
				zap.String("doc_id", doc.Ref.ID),
				zap.Error(err),
			)
			continue
		}
		users = append(users, u)
	}

	return users, nil
}

// Close releases the underlying Firestore client.
func (s *FirestoreUserStore) Close() error {
	return s.client.Close()
}

var _ domain.UserStore = (*FirestoreUserStore)(nil)
