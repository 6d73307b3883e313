// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"sort"

	"ai-shopping-list-be/internal/dto"
	"ai-shopping-list-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

const moduleConsumer = "CONSUMER"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	log        logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		log:        log,
	}
}

// Consume subscribes and processes messages in the background until ctx is done.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Always ack: a malformed payload will not improve on redelivery
	defer msg.Ack()

	var payload dto.ShoppingListGeneratedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error(moduleConsumer, "Failed to unmarshal message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	categories := make([]string, 0, len(payload.CategoryCounts))
	for name := range payload.CategoryCounts {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	cs.log.Info(moduleConsumer, "Shopping list generated", map[string]interface{}{
		"list_id":         payload.ListId.String(),
		"item_count":      payload.ItemCount,
		"categories":      categories,
		"category_counts": payload.CategoryCounts,
		"generated_at":    payload.GeneratedAt,
	})
}
