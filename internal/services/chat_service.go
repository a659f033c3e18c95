package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/internal/chatstream"
	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/pkg/utils"
)

// itineraryContextRunes caps how much of the itinerary is sent with each
// question.
const itineraryContextRunes = 800

// ChatStreamer opens a streamed chat turn with an upstream assistant.
type ChatStreamer interface {
	StreamChat(ctx context.Context, req chatstream.Request) (chatstream.Stream, error)
}

type ChatServiceInterface interface {
	Chat(ctx context.Context, req request_models.ChatRequest) (chatstream.Reply, error)
}

type ChatService struct {
	streamer ChatStreamer
	logger   *zap.Logger
	timeout  time.Duration
	now      func() time.Time
}

func NewChatService(streamer ChatStreamer, logger *zap.Logger, timeout time.Duration) ChatServiceInterface {
	return &ChatService{
		streamer: streamer,
		logger:   logger,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (s *ChatService) Chat(ctx context.Context, req request_models.ChatRequest) (chatstream.Reply, error) {
	if strings.TrimSpace(req.Message) == "" || strings.TrimSpace(req.ItineraryText) == "" {
		return chatstream.Reply{}, utils.ErrMissingChatFields
	}

	userID := req.UserID
	if userID == "" {
		userID = "user_" + strconv.FormatInt(s.now().UnixMilli(), 10)
	}

	chatCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stream, err := s.streamer.StreamChat(chatCtx, chatstream.Request{
		UserID:         userID,
		ConversationID: req.ConversationID,
		Prompt:         BuildChatPrompt(req.ItineraryText, req.Message),
	})
	if err != nil {
		return chatstream.Reply{}, ClassifyUpstreamError(err)
	}
	defer stream.Close()

	reply, err := chatstream.Aggregate(chatCtx, stream, req.ConversationID)
	if err != nil {
		return chatstream.Reply{}, ClassifyUpstreamError(err)
	}
	if reply.Text == chatstream.FallbackReply {
		s.logger.Warn("chat produced no assistant message", zap.String("user_id", userID))
	}
	return reply, nil
}

// BuildChatPrompt frames the question with the start of the itinerary.
func BuildChatPrompt(itinerary, question string) string {
	if runes := []rune(itinerary); len(runes) > itineraryContextRunes {
		itinerary = string(runes[:itineraryContextRunes])
	}
	return fmt.Sprintf(`You are a professional travel assistant. Answer strictly based on the user's travel itinerary below.
<itinerary>
%s
</itinerary>
The user's question about this itinerary: %s
Answer directly without restating the itinerary or the question.`, itinerary, question)
}
