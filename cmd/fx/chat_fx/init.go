package chat_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/internal/config"
	"github.com/yifan996/Itinerary/internal/services"
	"github.com/yifan996/Itinerary/pkg/coze"
	"github.com/yifan996/Itinerary/pkg/llm"
)

var Module = fx.Provide(
	ProvideChatStreamer,
	ProvideChatService,
)

// ProvideChatStreamer picks the chat backend named by CHAT_PROVIDER.
func ProvideChatStreamer(lc fx.Lifecycle, cfg *config.Config, cozeClient *coze.Client, logger *zap.Logger) (services.ChatStreamer, error) {
	logger.Info("Initializing chat provider", zap.String("provider", cfg.ChatProvider))

	switch cfg.ChatProvider {
	case config.ProviderCoze:
		return cozeClient, nil
	case config.ProviderOpenAI:
		return llm.NewOpenAIChatClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL), nil
	case config.ProviderGemini:
		client, err := llm.NewGeminiChatClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return client.Close() },
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'coze', 'openai' or 'gemini'", cfg.ChatProvider)
	}
}

func ProvideChatService(streamer services.ChatStreamer, cfg *config.Config, logger *zap.Logger) services.ChatServiceInterface {
	return services.NewChatService(streamer, logger, cfg.Upstream.ChatTimeout)
}
