package bootstrap

import (
	"context"
	"log"
	"strings"
	"time"

	"ai-shopping-list-be/internal/config"
	"ai-shopping-list-be/internal/controller"
	"ai-shopping-list-be/internal/pkg/logger"
	"ai-shopping-list-be/internal/repository/contract"
	"ai-shopping-list-be/internal/repository/memory"
	redisRepo "ai-shopping-list-be/internal/repository/redis"
	"ai-shopping-list-be/internal/service"
	"ai-shopping-list-be/pkg/grocery"
	"ai-shopping-list-be/pkg/llm"
	"ai-shopping-list-be/pkg/llm/factory"
	pktNats "ai-shopping-list-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ShoppingListController controller.IShoppingListController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(cfg *config.Config) *Container {
	c := &Container{}

	// 1. Logging
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c.Logger = sysLogger
	c.closers = append(c.closers, func() { _ = sysLogger.Sync() })

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Model
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.BaseURLForProvider(),
		cfg.Ai.APIKeyForProvider(),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	if v, ok := llmProvider.(llm.ModelValidator); ok {
		checkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := v.CheckModel(checkCtx); err != nil {
			log.Printf("[WARN] LLM model check failed: %v. Generation requests will fail until it is available", err)
		}
		cancel()
	}

	generator := grocery.NewGenerator(
		llm.NewChatCaller(llmProvider, llm.WithTemperature(cfg.Ai.Temperature)),
	)

	// 4. Storage
	repo := c.newShoppingListRepository(cfg)

	// 5. Cross-service events (optional)
	var eventPublisher service.EventPublisher
	if cfg.App.NatsEnabled {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 6. Services
	publisherService := service.NewPublisherService(cfg.ShoppingList.GeneratedTopicName, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.ShoppingList.GeneratedTopicName,
		logger.NewIsolatedLogger("logs/events.log"),
	)

	shoppingListService := service.NewShoppingListService(
		generator,
		repo,
		publisherService,
		eventPublisher,
		sysLogger,
		cfg.Ai.Timeout,
	)

	// 7. Controllers
	c.ShoppingListController = controller.NewShoppingListController(shoppingListService)

	return c
}

func (c *Container) newShoppingListRepository(cfg *config.Config) contract.ShoppingListRepository {
	if !strings.EqualFold(cfg.ShoppingList.Store, "redis") {
		log.Printf("[INFO] Using in-memory shopping list store (ttl %s)", cfg.ShoppingList.TTL)
		return memory.NewShoppingListRepository(cfg.ShoppingList.TTL)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory store", err)
		_ = rdb.Close()
		return memory.NewShoppingListRepository(cfg.ShoppingList.TTL)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	log.Printf("[INFO] Using Redis shopping list store (ttl %s)", cfg.ShoppingList.TTL)
	return redisRepo.NewShoppingListRepository(rdb, cfg.ShoppingList.TTL)
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
