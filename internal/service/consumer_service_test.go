package service

import (
	"context"
	"testing"
	"time"

	"ai-shopping-list-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsumerLogsGeneratedLists(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core, logs := observer.New(zap.DebugLevel)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewConsumerService(pubSub, "generated", logger.NewWithCore(core))
	require.NoError(t, consumer.Consume(ctx))

	listId := uuid.New()
	payload := []byte(`{"list_id":"` + listId.String() + `","item_count":3,"category_counts":{"Produce":2,"Dairy":1}}`)
	require.NoError(t, pubSub.Publish("generated", message.NewMessage(watermill.NewUUID(), payload)))
	require.NoError(t, pubSub.Publish("generated", message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	require.Eventually(t, func() bool { return logs.Len() == 2 }, time.Second, 10*time.Millisecond)

	info := logs.FilterMessage("Shopping list generated").All()
	require.Len(t, info, 1)
	details, ok := info[0].ContextMap()["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, listId.String(), details["list_id"])
	assert.Equal(t, 3, details["item_count"])
	assert.Equal(t, []string{"Dairy", "Produce"}, details["categories"])

	assert.Equal(t, 1, logs.FilterMessage("Failed to unmarshal message").Len())
}
