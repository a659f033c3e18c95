// Package config loads process settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderCoze   = "coze"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type CozeConfig struct {
	BaseURL    string
	APIToken   string
	BotID      string
	WorkflowID string

	// OAuth JWT app credentials. When AppID is set they take precedence over
	// APIToken.
	OAuthAppID          string
	OAuthKeyID          string
	OAuthPrivateKeyFile string
}

func (c CozeConfig) UsesOAuth() bool {
	return c.OAuthAppID != ""
}

type Config struct {
	HTTP struct {
		Port      string
		StaticDir string
		GinMode   string
	}
	DB struct {
		DSN string
	}
	Log struct {
		Level string
	}
	ChatProvider string
	Coze         CozeConfig
	OpenAI       struct {
		APIKey  string
		Model   string
		BaseURL string
	}
	Gemini struct {
		APIKey string
		Model  string
	}
	Upstream struct {
		WorkflowTimeout   time.Duration
		ChatTimeout       time.Duration
		HTTPClientTimeout time.Duration
	}
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	var errs []error

	cfg.HTTP.Port = envOrDefault("PORT", "8080")
	cfg.HTTP.StaticDir = envOrDefault("STATIC_DIR", "./frontend")
	cfg.HTTP.GinMode = os.Getenv("GIN_MODE")
	cfg.DB.DSN = os.Getenv("POSTGRES_URL")
	cfg.Log.Level = envOrDefault("LOG_LEVEL", "info")
	cfg.ChatProvider = strings.ToLower(envOrDefault("CHAT_PROVIDER", ProviderCoze))

	cfg.Coze.BaseURL = envOrDefault("COZE_BASE_URL", "https://api.coze.cn")
	cfg.Coze.APIToken = os.Getenv("COZE_API_TOKEN")
	cfg.Coze.BotID = os.Getenv("COZE_BOT_ID")
	cfg.Coze.WorkflowID = envOrDefault("COZE_WORKFLOW_ID", "7568089470144839707")
	cfg.Coze.OAuthAppID = os.Getenv("COZE_OAUTH_APP_ID")
	cfg.Coze.OAuthKeyID = os.Getenv("COZE_OAUTH_KEY_ID")
	cfg.Coze.OAuthPrivateKeyFile = os.Getenv("COZE_OAUTH_PRIVATE_KEY_FILE")

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAI.Model = envOrDefault("OPENAI_MODEL", "gpt-4o-mini")
	cfg.OpenAI.BaseURL = os.Getenv("OPENAI_BASE_URL")
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Gemini.Model = envOrDefault("GEMINI_MODEL", "gemini-1.5-flash")

	var err error
	if cfg.Upstream.WorkflowTimeout, err = envOrDefaultDuration("WORKFLOW_TIMEOUT", 120*time.Second); err != nil {
		errs = append(errs, err)
	}
	if cfg.Upstream.ChatTimeout, err = envOrDefaultDuration("CHAT_TIMEOUT", 60*time.Second); err != nil {
		errs = append(errs, err)
	}
	if cfg.Upstream.HTTPClientTimeout, err = envOrDefaultDuration("HTTP_CLIENT_TIMEOUT", 180*time.Second); err != nil {
		errs = append(errs, err)
	}

	if cfg.DB.DSN == "" {
		errs = append(errs, errors.New("POSTGRES_URL is required"))
	}
	if cfg.Coze.UsesOAuth() {
		if cfg.Coze.OAuthKeyID == "" || cfg.Coze.OAuthPrivateKeyFile == "" {
			errs = append(errs, errors.New("COZE_OAUTH_KEY_ID and COZE_OAUTH_PRIVATE_KEY_FILE are required with COZE_OAUTH_APP_ID"))
		}
	} else if cfg.Coze.APIToken == "" {
		// The workflow always goes through Coze.
		errs = append(errs, errors.New("COZE_API_TOKEN or COZE_OAUTH_APP_ID is required"))
	}

	switch cfg.ChatProvider {
	case ProviderCoze:
		if cfg.Coze.BotID == "" {
			errs = append(errs, errors.New("COZE_BOT_ID is required when CHAT_PROVIDER=coze"))
		}
	case ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when CHAT_PROVIDER=openai"))
		}
	case ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when CHAT_PROVIDER=gemini"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported CHAT_PROVIDER %q, use coze, openai or gemini", cfg.ChatProvider))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
