// Package firestore implements the repository.Store interface on Cloud
// Firestore.
package firestore

import (
	"context"
	"log/slog"

	"pristol/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreStore is the Firestore-backed document store. It returns raw
// document data untouched; normalization is the caller's concern.
type firestoreStore struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewStore is the constructor for the Firestore store.
func NewStore(client *firestore.Client, logger *slog.Logger) repository.Store {
	return &firestoreStore{
		client: client,
		logger: logger,
	}
}

func direction(dir repository.Direction) firestore.Direction {
	if dir == repository.Descending {
		return firestore.Desc
	}

	return firestore.Asc
}

// List returns every document of the collection ordered by the given field.
func (s *firestoreStore) List(ctx context.Context, collection, orderBy string, dir repository.Direction) ([]repository.Document, error) {
	iter := s.client.Collection(collection).OrderBy(orderBy, direction(dir)).Documents(ctx)
	defer iter.Stop()

	var docs []repository.Document
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "iterate %s", collection)
		}

		docs = append(docs, repository.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

// Get retrieves a single document, mapping the Firestore not-found code to
// repository.ErrNotFound.
func (s *firestoreStore) Get(ctx context.Context, collection, id string) (repository.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.Document{}, repository.ErrNotFound
		}

		return repository.Document{}, errors.Wrapf(err, "get %s/%s", collection, id)
	}

	return repository.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

// Create adds a document and returns the store-assigned identifier.
func (s *firestoreStore) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", errors.Wrapf(err, "add to %s", collection)
	}

	return ref.ID, nil
}

// UpdateFields overwrites only the given fields of an existing document.
func (s *firestoreStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrNotFound
		}

		return errors.Wrapf(err, "update %s/%s", collection, id)
	}

	return nil
}

// Delete removes a document. Deleting a missing document is not an error,
// matching Firestore semantics.
func (s *firestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete %s/%s", collection, id)
	}

	return nil
}

// Subscribe streams query snapshots to fn from a dedicated goroutine. Each
// snapshot carries the complete collection contents. The returned stop
// function cancels the stream; the goroutine exits on cancellation or on the
// first stream error.
func (s *firestoreStore) Subscribe(ctx context.Context, collection, orderBy string, dir repository.Direction, fn repository.SnapshotFunc) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	snapshots := s.client.Collection(collection).OrderBy(orderBy, direction(dir)).Snapshots(ctx)

	go func() {
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					s.logger.Error("snapshot stream closed",
						slog.String("collection", collection),
						slog.Any("error", err),
					)
				}

				return
			}

			docs, err := readAll(snap.Documents)
			if err != nil {
				s.logger.Error("failed to read snapshot",
					slog.String("collection", collection),
					slog.Any("error", err),
				)

				continue
			}

			fn(docs)
		}
	}()

	return cancel, nil
}

func readAll(iter *firestore.DocumentIterator) ([]repository.Document, error) {
	defer iter.Stop()

	var docs []repository.Document
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}

		docs = append(docs, repository.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}
