package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// talking to the server at address ("host:port" or a full URL). A
// non-positive timeout falls back to 15s.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs player to /api/players with the secret as bearer value.
func (h *httpServerAdapter) Register(ctx context.Context, player models.Player, secret string) (models.Player, error) {
	var created models.Player

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(secret).
		SetHeader("Content-Type", "application/json").
		SetBody(player).
		SetResult(&created).
		Post("/api/players")
	if err != nil {
		return models.Player{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Player{}, err
	}

	return created, nil
}

// Login POSTs {"username"} to /api/login with the secret as bearer value.
// The plain-text response body is the session token.
func (h *httpServerAdapter) Login(ctx context.Context, username, secret string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(secret).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Account{Username: username}).
		Post("/api/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := strings.TrimSpace(resp.String())
	if token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", username).Msg("session token received")
	return token, nil
}

func (h *httpServerAdapter) Validate(ctx context.Context, token string) (models.ValidateResponse, error) {
	var result models.ValidateResponse

	req := h.client.R().SetContext(ctx).SetResult(&result)
	if token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post("/api/validate")
	if err != nil {
		return models.ValidateResponse{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidateResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&players).
		Get("/api/players")
	if err != nil {
		return nil, fmt.Errorf("list players request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return players, nil
}

func (h *httpServerAdapter) GetPlayer(ctx context.Context, username string) (models.Player, error) {
	var player models.Player

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("username", username).
		SetResult(&player).
		Get("/api/players/{username}")
	if err != nil {
		return models.Player{}, fmt.Errorf("get player request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Player{}, err
	}

	return player, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Player, error) {
	var player models.Player

	resp, err := h.authedRequest(ctx).
		SetResult(&player).
		Get("/api/me")
	if err != nil {
		return models.Player{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Player{}, err
	}

	return player, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
