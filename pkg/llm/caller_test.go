package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProvider struct {
	history []Message
	options Options
	reply   string
	err     error
}

func (p *recordingProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	p.history = history
	for _, o := range options {
		o(&p.options)
	}
	return p.reply, p.err
}

func (p *recordingProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return p.Chat(ctx, []Message{{Role: RoleUser, Content: prompt}}, options...)
}

func TestChatCallerComplete(t *testing.T) {
	provider := &recordingProvider{reply: "Produce:\n- Apples"}
	caller := NewChatCaller(provider, WithTemperature(0.1))

	out, err := caller.Complete(context.Background(), "system rules", "meal plan")
	require.NoError(t, err)
	assert.Equal(t, "Produce:\n- Apples", out)
	assert.Equal(t, []Message{
		{Role: RoleSystem, Content: "system rules"},
		{Role: RoleUser, Content: "meal plan"},
	}, provider.history)
	assert.Equal(t, 0.1, provider.options.Temperature)
}

func TestChatCallerSkipsBlankSystemInstruction(t *testing.T) {
	provider := &recordingProvider{reply: "ok"}

	_, err := NewChatCaller(provider).Complete(context.Background(), "  ", "meal plan")
	require.NoError(t, err)
	require.Len(t, provider.history, 1)
	assert.Equal(t, RoleUser, provider.history[0].Role)
}

func TestChatCallerWrapsProviderError(t *testing.T) {
	cause := errors.New("connection refused")
	_, err := NewChatCaller(&recordingProvider{err: cause}).Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
}
