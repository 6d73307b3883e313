package factory

import (
	"ai-shopping-list-be/pkg/llm"
	"ai-shopping-list-be/pkg/llm/huggingface"
	"ai-shopping-list-be/pkg/llm/ollama"
	"fmt"
	"strings"
	"time"
)

const (
	ProviderOllama      = "ollama"
	ProviderHuggingFace = "huggingface"

	// Consecutive generations reuse the loaded model
	ollamaKeepAlive = 10 * time.Minute
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch strings.ToLower(providerType) {
	case ProviderOllama:
		return ollama.NewOllamaProvider(baseURL, modelName, ollama.WithKeepAlive(ollamaKeepAlive)), nil
	case ProviderHuggingFace:
		if apiKey == "" {
			return nil, fmt.Errorf("huggingface provider requires an API key")
		}
		return huggingface.NewHuggingFaceProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
