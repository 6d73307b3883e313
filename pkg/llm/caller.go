package llm

import (
	"context"
	"fmt"
	"strings"
)

// ChatCaller sends a system instruction plus one user prompt to a provider.
// It satisfies grocery.ModelCaller.
type ChatCaller struct {
	provider LLMProvider
	options  []Option
}

func NewChatCaller(provider LLMProvider, options ...Option) *ChatCaller {
	return &ChatCaller{
		provider: provider,
		options:  options,
	}
}

func (c *ChatCaller) Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	history := make([]Message, 0, 2)
	if strings.TrimSpace(systemInstruction) != "" {
		history = append(history, Message{Role: RoleSystem, Content: systemInstruction})
	}
	history = append(history, Message{Role: RoleUser, Content: userPrompt})

	response, err := c.provider.Chat(ctx, history, c.options...)
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}
	return response, nil
}
