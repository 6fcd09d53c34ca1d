package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"pristol/internal/domain/repository"
	"pristol/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// updateCall records a single UpdateFields invocation.
type updateCall struct {
	collection string
	id         string
	fields     map[string]any
}

// fakeStore is an in-memory repository.Store with per-operation error
// injection for exercising failure paths.
type fakeStore struct {
	mu sync.Mutex

	docs map[string][]repository.Document

	listErr   map[string]error
	createErr error
	updateErr error
	deleteErr error

	nextID  int
	updates []updateCall
	deletes []string

	snapshotFn   repository.SnapshotFunc
	subscribeErr error
	stopped      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:    make(map[string][]repository.Document),
		listErr: make(map[string]error),
	}
}

func (s *fakeStore) seed(collection string, docs ...repository.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[collection] = append(s.docs[collection], docs...)
}

func (s *fakeStore) List(ctx context.Context, collection, orderBy string, dir repository.Direction) ([]repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.listErr[collection]; err != nil {
		return nil, err
	}

	out := make([]repository.Document, len(s.docs[collection]))
	copy(out, s.docs[collection])

	return out, nil
}

func (s *fakeStore) Get(ctx context.Context, collection, id string) (repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.docs[collection] {
		if doc.ID == id {
			return doc, nil
		}
	}

	return repository.Document{}, repository.ErrNotFound
}

func (s *fakeStore) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return "", s.createErr
	}

	s.nextID++
	id := fmt.Sprintf("gen-%d", s.nextID)
	s.docs[collection] = append(s.docs[collection], repository.Document{ID: id, Data: data})

	return id, nil
}

func (s *fakeStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.updateErr != nil {
		return s.updateErr
	}

	s.updates = append(s.updates, updateCall{collection: collection, id: id, fields: fields})

	return nil
}

func (s *fakeStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deleteErr != nil {
		return s.deleteErr
	}

	s.deletes = append(s.deletes, collection+"/"+id)
	docs := s.docs[collection][:0]
	for _, doc := range s.docs[collection] {
		if doc.ID != id {
			docs = append(docs, doc)
		}
	}
	s.docs[collection] = docs

	return nil
}

func (s *fakeStore) Subscribe(ctx context.Context, collection, orderBy string, dir repository.Direction, fn repository.SnapshotFunc) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscribeErr != nil {
		return nil, s.subscribeErr
	}

	s.snapshotFn = fn

	return func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
	}, nil
}

// push delivers a snapshot to the registered subscriber.
func (s *fakeStore) push(docs []repository.Document) {
	s.mu.Lock()
	fn := s.snapshotFn
	s.mu.Unlock()

	if fn != nil {
		fn(docs)
	}
}

// fakePublisher records published mutation events.
type fakePublisher struct {
	mu     sync.Mutex
	events []*service.MutationEvent
	err    error
}

func (p *fakePublisher) PublishMutationEvent(ctx context.Context, event *service.MutationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}

	p.events = append(p.events, event)

	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Kind)
	}

	return out
}
