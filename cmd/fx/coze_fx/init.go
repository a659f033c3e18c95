package coze_fx

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/internal/config"
	"github.com/yifan996/Itinerary/pkg/coze"
	mem "github.com/yifan996/Itinerary/pkg/memcache"
)

var Module = fx.Provide(
	provideTokenSource,
	provideCozeClient,
)

// provideTokenSource prefers OAuth JWT app credentials and falls back to a
// personal access token.
func provideTokenSource(cfg *config.Config, cache mem.TokenStore, logger *zap.Logger) (coze.TokenSource, error) {
	if !cfg.Coze.UsesOAuth() {
		logger.Info("Coze auth: personal access token")
		return coze.StaticToken(cfg.Coze.APIToken), nil
	}

	pemBytes, err := os.ReadFile(cfg.Coze.OAuthPrivateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("read coze private key: %w", err)
	}
	src, err := coze.NewJWTTokenSource(coze.JWTConfig{
		BaseURL:       cfg.Coze.BaseURL,
		AppID:         cfg.Coze.OAuthAppID,
		KeyID:         cfg.Coze.OAuthKeyID,
		PrivateKeyPEM: pemBytes,
	}, cache)
	if err != nil {
		return nil, err
	}
	logger.Info("Coze auth: OAuth JWT app", zap.String("app_id", cfg.Coze.OAuthAppID))
	return src, nil
}

func provideCozeClient(cfg *config.Config, auth coze.TokenSource) *coze.Client {
	return coze.NewClient(coze.Config{
		BaseURL:    cfg.Coze.BaseURL,
		BotID:      cfg.Coze.BotID,
		WorkflowID: cfg.Coze.WorkflowID,
		Timeout:    cfg.Upstream.HTTPClientTimeout,
		Auth:       auth,
	})
}
