package entity

// MessageStatus is the handling state of a contact message. Messages start
// unread; transitions are expected to move forward (unread, read, replied)
// but any status may be set directly.
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// Valid reports whether the status is one of the known handling states.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return true
	}

	return false
}

// ContactMessage is a message submitted through the storefront contact form.
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	CreatedAt int64         `json:"createdAt"` // Epoch milliseconds.
}
