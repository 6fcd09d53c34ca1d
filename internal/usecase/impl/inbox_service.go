package impl

import (
	"context"
	"log/slog"

	"pristol/internal/domain/constants"
	"pristol/internal/domain/entity"
	"pristol/internal/usecase"

	"github.com/pkg/errors"
)

// inboxService implements the InboxUsecase interface over the synchronized
// message collection.
type inboxService struct {
	sync   usecase.SyncUsecase
	logger *slog.Logger
}

// NewInboxService is the constructor for inboxService.
func NewInboxService(sync usecase.SyncUsecase, logger *slog.Logger) usecase.InboxUsecase {
	return &inboxService{
		sync:   sync,
		logger: logger,
	}
}

// FilterMessages returns messages matching the status; "all" or empty
// matches everything.
func (srv *inboxService) FilterMessages(status string) []entity.ContactMessage {
	messages := srv.sync.Messages()
	if status == "" || status == constants.CategoryAll {
		return messages
	}

	out := make([]entity.ContactMessage, 0, len(messages))
	for _, m := range messages {
		if string(m.Status) == status {
			out = append(out, m)
		}
	}

	return out
}

// UnreadCount counts messages still unread.
func (srv *inboxService) UnreadCount() int {
	count := 0
	for _, m := range srv.sync.Messages() {
		if m.Status == entity.MessageStatusUnread {
			count++
		}
	}

	return count
}

// MarkRead sets the message status to read.
func (srv *inboxService) MarkRead(ctx context.Context, id string) error {
	if err := srv.sync.UpdateMessageStatus(ctx, id, entity.MessageStatusRead); err != nil {
		return errors.Wrap(err, "mark message read")
	}

	return nil
}

// MarkReplied sets the message status to replied.
func (srv *inboxService) MarkReplied(ctx context.Context, id string) error {
	if err := srv.sync.UpdateMessageStatus(ctx, id, entity.MessageStatusReplied); err != nil {
		return errors.Wrap(err, "mark message replied")
	}

	return nil
}
