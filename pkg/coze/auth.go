package coze

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yifan996/Itinerary/pkg/memcache"
)

// TokenSource supplies the bearer token for each API call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a personal access token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", errors.New("coze: empty access token")
	}
	return string(t), nil
}

type JWTConfig struct {
	BaseURL       string
	AppID         string
	KeyID         string
	PrivateKeyPEM []byte
	// TokenDuration is the lifetime requested for each access token.
	TokenDuration time.Duration
}

// JWTTokenSource exchanges a JWT signed with an OAuth app's private key for a
// short-lived access token, caching it until shortly before it expires.
type JWTTokenSource struct {
	baseURL    string
	audience   string
	appID      string
	keyID      string
	key        *rsa.PrivateKey
	duration   time.Duration
	cache      memcache.TokenStore
	httpClient *http.Client
	now        func() time.Time
}

const tokenExpirySkew = 30 * time.Second

func NewJWTTokenSource(cfg JWTConfig, cache memcache.TokenStore) (*JWTTokenSource, error) {
	if cfg.AppID == "" || cfg.KeyID == "" {
		return nil, errors.New("coze: oauth app id and key id are required")
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(cfg.PrivateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("coze: parse private key: %w", err)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("coze: parse base url: %w", err)
	}

	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = 15 * time.Minute
	}
	return &JWTTokenSource{
		baseURL:    baseURL,
		audience:   u.Host,
		appID:      cfg.AppID,
		keyID:      cfg.KeyID,
		key:        key,
		duration:   duration,
		cache:      cache,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}, nil
}

type tokenRequest struct {
	DurationSeconds int64  `json:"duration_seconds"`
	GrantType       string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	// ExpiresIn is an absolute unix timestamp.
	ExpiresIn int64 `json:"expires_in"`
}

func (s *JWTTokenSource) Token(ctx context.Context) (string, error) {
	if token, ok := s.cache.Get(s.appID); ok {
		return token, nil
	}

	assertion, err := s.signAssertion()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(tokenRequest{
		DurationSeconds: int64(s.duration / time.Second),
		GrantType:       "urn:ietf:params:oauth:grant-type:jwt-bearer",
	})
	if err != nil {
		return "", fmt.Errorf("coze: marshal token request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/permission/oauth2/token", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("coze: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+assertion)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", transportError("token exchange", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError("read token response", err)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env struct {
			Code         int    `json:"code"`
			Msg          string `json:"msg"`
			ErrorCode    string `json:"error_code"`
			ErrorMessage string `json:"error_message"`
		}
		if json.Unmarshal(body, &env) == nil {
			apiErr.Code = env.Code
			apiErr.Message = env.Msg
			if apiErr.Message == "" {
				apiErr.Message = strings.TrimSpace(env.ErrorCode + " " + env.ErrorMessage)
			}
		}
		return "", apiErr
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("coze: decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", errors.New("coze: token response without access_token")
	}

	ttl := time.Unix(tr.ExpiresIn, 0).Sub(s.now()) - tokenExpirySkew
	if ttl > 0 {
		s.cache.Set(s.appID, tr.AccessToken, ttl)
	}
	return tr.AccessToken, nil
}

func (s *JWTTokenSource) signAssertion() (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"iss": s.appID,
		"aud": s.audience,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = s.keyID

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("coze: sign jwt: %w", err)
	}
	return signed, nil
}
