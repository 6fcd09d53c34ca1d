package service

import "context"

// MutationEvent describes a successful admin mutation. The storefront
// consumes these to invalidate its caches.
type MutationEvent struct {
	EventID    string `json:"event_id"`             // Unique event identifier.
	Kind       string `json:"kind"`                 // e.g. "product.created", "order.status_updated".
	Collection string `json:"collection"`           // Store collection the mutation touched.
	DocumentID string `json:"document_id"`          // Identifier of the mutated document.
	RequestID  string `json:"request_id,omitempty"` // Originating request, for tracing.
	OccurredAt int64  `json:"occurred_at"`          // Epoch milliseconds.
}

// Mutation event kinds.
const (
	EventProductCreated       = "product.created"
	EventProductUpdated       = "product.updated"
	EventProductDeleted       = "product.deleted"
	EventOrderStatusUpdated   = "order.status_updated"
	EventMessageStatusUpdated = "message.status_updated"
	EventMessageDeleted       = "message.deleted"
)

// EventPublisher publishes mutation events to the configured transport.
type EventPublisher interface {
	PublishMutationEvent(ctx context.Context, event *MutationEvent) error
	Close() error
}
