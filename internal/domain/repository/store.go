// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is a domain-specific error returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Direction controls the sort order of listed documents.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Document is a raw record as retrieved from the remote store, before
// normalization. Data carries whatever field names and value shapes the
// stored revision happened to use.
type Document struct {
	ID   string
	Data map[string]any
}

// SnapshotFunc receives a complete point-in-time listing of a collection.
// Each call replaces any previously delivered listing.
type SnapshotFunc func(docs []Document)

// Store defines the narrow read/write surface over the remote document
// database. All operations are one-shot and unretried; retry policy belongs
// to the caller.
type Store interface {
	// List returns every document in the collection ordered by the given field.
	List(ctx context.Context, collection, orderBy string, dir Direction) ([]Document, error)

	// Get retrieves a single document, returning ErrNotFound when it does not exist.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Create adds a document and returns the store-assigned identifier.
	Create(ctx context.Context, collection string, data map[string]any) (string, error)

	// UpdateFields overwrites only the given fields of an existing document.
	UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes a document.
	Delete(ctx context.Context, collection, id string) error

	// Subscribe registers fn to receive full collection snapshots, starting
	// with the current contents. The returned stop function cancels the
	// subscription; fn is never called after stop returns.
	Subscribe(ctx context.Context, collection, orderBy string, dir Direction, fn SnapshotFunc) (func(), error)
}
