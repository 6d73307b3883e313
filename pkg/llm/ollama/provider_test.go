package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-shopping-list-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaChat(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, chatPath, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(chatResponse{
			Model:   got.Model,
			Message: chatMessage{Role: "assistant", Content: "Produce:\n- Kale - 1 bunch"},
			Done:    true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "llama3", WithKeepAlive(10*time.Minute))
	out, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "be brief"},
		{Role: "model", Content: "ok"},
		{Role: llm.RoleUser, Content: "list"},
	}, llm.WithTemperature(0.2), llm.WithMaxTokens(256))

	require.NoError(t, err)
	assert.Equal(t, "Produce:\n- Kale - 1 bunch", out)
	assert.Equal(t, "llama3", got.Model)
	assert.False(t, got.Stream)
	assert.Equal(t, "10m0s", got.KeepAlive)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "assistant", got.Messages[1].Role)
	assert.Equal(t, 0.2, got.Options.Temperature)
	assert.Equal(t, 256, got.Options.NumPredict)
}

func TestBuildChatRequestDefaults(t *testing.T) {
	req := NewOllamaProvider("", "llama3").buildChatRequest([]llm.Message{{Role: llm.RoleUser, Content: "hi"}})

	assert.Equal(t, defaultTemperature, req.Options.Temperature)
	assert.Zero(t, req.Options.NumPredict)
	assert.Empty(t, req.KeepAlive)
}

func TestOllamaModelOverride(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(chatResponse{Message: chatMessage{Content: "hi"}})
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "llama3").Generate(context.Background(), "hello", llm.WithModel("qwen2.5"))
	require.NoError(t, err)
	assert.Equal(t, "qwen2.5", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, llm.RoleUser, got.Messages[0].Role)
}

func TestOllamaErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"error status with json body", http.StatusNotFound, `{"error":"model 'missing' not found"}`, http.StatusNotFound, "model 'missing' not found"},
		{"error status with text body", http.StatusBadGateway, "upstream down", http.StatusBadGateway, "upstream down"},
		{"error field on 200", http.StatusOK, `{"error":"out of memory"}`, http.StatusOK, "out of memory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOllamaProvider(srv.URL, "missing").Generate(context.Background(), "hello")
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestCheckModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, tagsPath, r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3:latest"},{"name":"qwen2.5:7b"}]}`))
	}))
	defer srv.Close()

	assert.NoError(t, NewOllamaProvider(srv.URL, "llama3").CheckModel(context.Background()))
	assert.NoError(t, NewOllamaProvider(srv.URL, "qwen2.5:7b").CheckModel(context.Background()))

	err := NewOllamaProvider(srv.URL, "gemma:2b").CheckModel(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama pull gemma:2b")
}

func TestNewOllamaProviderDefaults(t *testing.T) {
	p := NewOllamaProvider("", "llama3")
	assert.Equal(t, DefaultBaseURL, p.BaseURL())
	assert.Equal(t, "llama3", p.Model())
	assert.Equal(t, 120*time.Second, p.client.Timeout)
}
