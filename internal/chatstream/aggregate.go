package chatstream

import (
	"context"
	"errors"
	"io"
	"strings"
)

// FallbackReply is returned in place of an empty reply.
const FallbackReply = "Your request was received, but the assistant did not produce a usable reply. Please try asking again."

// Reply is the consolidated result of one chat turn.
type Reply struct {
	Text           string
	ConversationID string
}

// Aggregate drains stream in arrival order and joins the completed assistant
// messages with newlines. The conversation id starts as prior and is replaced
// by every event that carries one. A failed stream yields no partial text.
func Aggregate(ctx context.Context, stream Stream, prior string) (Reply, error) {
	var text strings.Builder
	conversationID := prior

	for {
		if err := ctx.Err(); err != nil {
			return Reply{}, err
		}

		event, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Reply{}, err
		}

		if event.Kind == EventMessageCompleted && event.Role == RoleAssistant && event.Content != "" {
			text.WriteString(event.Content)
			text.WriteString("\n")
		}
		if event.ConversationID != "" {
			conversationID = event.ConversationID
		}
	}

	final := strings.TrimSpace(text.String())
	if final == "" {
		final = FallbackReply
	}
	return Reply{Text: final, ConversationID: conversationID}, nil
}
