package usecase

import (
	"context"

	"pristol/internal/domain/entity"
)

// InboxUsecase provides the read-side projections and convenience writes
// over the contact message collection.
type InboxUsecase interface {
	// FilterMessages returns messages with the given status; "all" or empty
	// matches everything.
	FilterMessages(status string) []entity.ContactMessage

	// UnreadCount counts messages still unread.
	UnreadCount() int

	// MarkRead sets the message status to read.
	MarkRead(ctx context.Context, id string) error

	// MarkReplied sets the message status to replied.
	MarkReplied(ctx context.Context, id string) error
}
