package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ChatService proxies a single chat message to the OpenRouter completions
// API. Deliberately a plain pass-through: no retry, no backoff, no
// streaming. The upstream response body is handed back verbatim.
type ChatService struct {
	cfg    ChatConfig
	client *http.Client
}

type ChatConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
	URL    string `yaml:"url"`
}

const defaultChatTimeout = 60 * time.Second

func NewChatService(cfg ChatConfig) *ChatService {
	return &ChatService{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultChatTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

func (s *ChatService) Ask(ctx context.Context, message string) (json.RawMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message required", ErrValidation)
	}

	body, err := json.Marshal(chatRequest{
		Model:    s.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: message}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat upstream returned status %d", resp.StatusCode)
	}

	return payload, nil
}
