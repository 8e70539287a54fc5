package domain

import "time"

// EventKind discriminates the event union published on the bus.
type EventKind string

const (
	KindConnectionStatus EventKind = "connection_status"
	KindMessageReceived  EventKind = "message_received"
	KindMessageSent      EventKind = "message_sent"
	KindMessageRead      EventKind = "message_read"
	KindChatUpdated      EventKind = "chat_updated"
)

// Event is a transient domain event. Events themselves are never persisted;
// only their side effects on chats and messages are.
type Event struct {
	Kind      EventKind
	Timestamp time.Time
	Payload   any
}

// ConnectionStatus is the payload for KindConnectionStatus.
type ConnectionStatus struct {
	Connected bool
	LoggedIn  bool
	Reason    string
}

// MessageEvent is the payload for KindMessageReceived and KindMessageSent.
type MessageEvent struct {
	Message *Message
}

// MessageRead is the payload for KindMessageRead.
type MessageRead struct {
	ChatJID    string
	MessageIDs []string
}

// ChatUpdated is the payload for KindChatUpdated.
type ChatUpdated struct {
	Chat *Chat
}
