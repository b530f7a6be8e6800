package chat

import "time"

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DeliveryStatus is the transient state of a sent message.
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusDelivered DeliveryStatus = "delivered"
	StatusFailed    DeliveryStatus = "failed"
)

// Message is a single chat entry.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
	Status    DeliveryStatus
}

// Session holds the ordered message list for the current run. It is
// ephemeral: nothing is persisted between sessions.
type Session struct {
	Messages []Message
}

// AppendUser adds a pending user message and returns its index.
func (s *Session) AppendUser(content string) int {
	s.Messages = append(s.Messages, Message{
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
		Status:    StatusPending,
	})
	return len(s.Messages) - 1
}

// AppendAssistant adds a delivered assistant reply and returns its index.
func (s *Session) AppendAssistant(content string) int {
	s.Messages = append(s.Messages, Message{
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
		Status:    StatusDelivered,
	})
	return len(s.Messages) - 1
}

// Resolve updates the delivery status of the message at index i.
// Out-of-range indices are ignored.
func (s *Session) Resolve(i int, status DeliveryStatus) {
	if i < 0 || i >= len(s.Messages) {
		return
	}
	s.Messages[i].Status = status
}

// Len returns the number of messages in the session.
func (s *Session) Len() int {
	return len(s.Messages)
}
