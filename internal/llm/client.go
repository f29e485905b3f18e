package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spherical/saleseer/internal/domain"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "openai/gpt-3.5-turbo"
	defaultTimeout = 15 * time.Second

	// maxErrorBody bounds how much of a failed response body is kept in errors.
	maxErrorBody = 512
)

// Client handles communication with the OpenRouter chat completions API
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	referer    string
	title      string
	httpClient *http.Client
}

// Config holds client settings. Zero values fall back to defaults.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Referer string
	Title   string
}

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat asks the provider for a particular output shape
type ResponseFormat struct {
	Type string `json:"type"`
}

// Request represents the API request structure
type Request struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// Response represents the API response structure
type Response struct {
	ID      string    `json:"id"`
	Choices []Choice  `json:"choices"`
	Error   *APIError `json:"error,omitempty"`
}

// Choice represents a single completion choice
type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// APIError is the error object returned by the provider
type APIError struct {
	Message string      `json:"message"`
	Code    interface{} `json:"code"`
}

// NewClient creates a new LLM client
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		referer:    cfg.Referer,
		title:      cfg.Title,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Model returns the model the client sends requests to.
func (c *Client) Model() string {
	return c.model
}

// Complete sends one chat completion request and returns the trimmed reply text.
// There is no retry: callers treat any error as a signal to degrade.
func (c *Client) Complete(ctx context.Context, systemPrompt, userText string, maxTokens int, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", domain.APIError("completion request", ErrUnauthorized)
	}

	body, err := json.Marshal(c.buildRequest(systemPrompt, userText, maxTokens, temperature))
	if err != nil {
		return "", domain.APIError("marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", domain.APIError("build request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.APIError("send request", classifyTransportError(ctx, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.APIError("read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", domain.APIError(
			fmt.Sprintf("API returned status %d: %s", resp.StatusCode, truncate(string(data), maxErrorBody)),
			classifyStatus(resp.StatusCode),
		)
	}

	return parseResponse(data)
}

// buildRequest constructs the chat request for a system instruction and user text
func (c *Client) buildRequest(systemPrompt, userText string, maxTokens int, temperature float64) *Request {
	return &Request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		MaxTokens:      maxTokens,
		Temperature:    temperature,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}
}

// parseResponse extracts the first choice's content from a completion body
func parseResponse(data []byte) (string, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", domain.APIError("decode response", fmt.Errorf("%w: %v", ErrBadResponse, err))
	}

	// Some providers report failures inside a 200 body.
	if resp.Error != nil {
		return "", domain.APIError("provider error: "+resp.Error.Message, ErrUnavailable)
	}

	if len(resp.Choices) == 0 {
		return "", domain.APIError("decode response", ErrEmptyResponse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", domain.APIError("decode response", ErrEmptyResponse)
	}

	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
