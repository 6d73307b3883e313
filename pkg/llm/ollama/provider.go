package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-shopping-list-be/pkg/llm"
)

const (
	DefaultBaseURL = "http://localhost:11434"

	// Lists are extraction, not creative writing
	defaultTemperature = 0.3

	chatPath = "/api/chat"
	tagsPath = "/api/tags"
)

// Provider talks to a local or self-hosted Ollama server.
type Provider struct {
	baseURL   string
	model     string
	keepAlive time.Duration
	client    *http.Client
}

var (
	_ llm.LLMProvider    = (*Provider)(nil)
	_ llm.ModelValidator = (*Provider)(nil)
)

type ProviderOption func(*Provider)

// WithKeepAlive keeps the model loaded between requests so consecutive lists skip the load time.
func WithKeepAlive(d time.Duration) ProviderOption {
	return func(p *Provider) {
		p.keepAlive = d
	}
}

func NewOllamaProvider(baseURL, model string, opts ...ProviderOption) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	p := &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		// Model loading on first request is slow
		client: &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) BaseURL() string { return p.baseURL }

func (p *Provider) Model() string { return p.model }

// APIError is a failure reported by the Ollama server itself.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ollama error: status %d: %s", e.StatusCode, e.Message)
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	Stream    bool          `json:"stream"`
	KeepAlive string        `json:"keep_alive,omitempty"`
	Options   chatOptions   `json:"options"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type chatResponse struct {
	Model   string      `json:"model"`
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
	Error   string      `json:"error,omitempty"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (p *Provider) buildChatRequest(history []llm.Message, opts ...llm.Option) chatRequest {
	options := &llm.Options{Temperature: defaultTemperature}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]chatMessage, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		if role == "model" {
			role = llm.RoleAssistant
		}
		messages = append(messages, chatMessage{Role: role, Content: msg.Content})
	}

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	req := chatRequest{
		Model:    model,
		Messages: messages,
		Options: chatOptions{
			Temperature: options.Temperature,
			NumPredict:  options.MaxTokens,
		},
	}
	if p.keepAlive > 0 {
		req.KeepAlive = p.keepAlive.String()
	}
	return req
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	var resp chatResponse
	if err := p.do(ctx, http.MethodPost, chatPath, p.buildChatRequest(history, opts...), &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: resp.Error}
	}
	return resp.Message.Content, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

// CheckModel verifies the server is reachable and the configured model has been pulled.
// A bare name matches its ":latest" tag.
func (p *Provider) CheckModel(ctx context.Context) error {
	var tags tagsResponse
	if err := p.do(ctx, http.MethodGet, tagsPath, nil, &tags); err != nil {
		return err
	}

	for _, m := range tags.Models {
		if m.Name == p.model || m.Name == p.model+":latest" {
			return nil
		}
	}
	return fmt.Errorf("model %q is not available on %s (run: ollama pull %s)", p.model, p.baseURL, p.model)
}

func (p *Provider) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
