package normalizer

import (
	"time"

	"pristol/internal/domain/entity"
)

// Message maps a raw contact message document into the canonical
// entity.ContactMessage. Like orders, the status field is defaulted when
// empty and passed through otherwise.
func Message(id string, raw map[string]any) entity.ContactMessage {
	createdAt := toMillis(raw["createdAt"])
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}

	return entity.ContactMessage{
		ID:        id,
		Name:      toString(raw["name"]),
		Email:     toString(raw["email"]),
		Subject:   toString(raw["subject"]),
		Message:   toString(raw["message"]),
		Status:    entity.MessageStatus(firstNonEmpty(toString(raw["status"]), string(entity.MessageStatusUnread))),
		CreatedAt: createdAt,
	}
}
