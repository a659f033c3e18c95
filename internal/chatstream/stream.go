// Package chatstream models the event sequence emitted by a streaming chat
// call and folds it into a single reply.
package chatstream

// EventKind tags an upstream chat event.
type EventKind string

const (
	EventChatCreated      EventKind = "conversation.chat.created"
	EventChatInProgress   EventKind = "conversation.chat.in_progress"
	EventMessageDelta     EventKind = "conversation.message.delta"
	EventMessageCompleted EventKind = "conversation.message.completed"
	EventChatCompleted    EventKind = "conversation.chat.completed"
	EventChatFailed       EventKind = "conversation.chat.failed"
	EventError            EventKind = "error"
	EventDone             EventKind = "done"
)

const RoleAssistant = "assistant"

// Event is one decoded upstream event. Fields the upstream did not send are
// left empty.
type Event struct {
	Kind           EventKind
	Role           string
	Type           string
	Content        string
	ConversationID string
}

// Stream is a finite, single-pass event sequence. Recv returns io.EOF once
// the upstream has closed the stream; any other error aborts it.
type Stream interface {
	Recv() (Event, error)
	Close() error
}

// Request is a single user turn sent to a chat provider.
type Request struct {
	UserID         string
	ConversationID string
	Prompt         string
}
