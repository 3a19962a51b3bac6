package bootstrap

import (
	"context"
	"log"

	"invoxa-search-be/internal/config"
	"invoxa-search-be/internal/controller"
	"invoxa-search-be/internal/pkg/logger"
	"invoxa-search-be/internal/repository/implementation"
	"invoxa-search-be/internal/repository/memory"
	"invoxa-search-be/internal/service"
	"invoxa-search-be/pkg/llm/factory"
	pktNats "invoxa-search-be/pkg/nats"
	"invoxa-search-be/pkg/search"
	"invoxa-search-be/pkg/usage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController controller.ISearchController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Query intelligence pipeline
	expander := search.NewExpander(llmProvider, log.Default())
	pipeline := search.NewPipeline(expander)

	// 5. Repositories
	eventRepo := implementation.NewSearchEventRepository(db)
	contextRepo := memory.NewSessionContextRepository()

	// 6. Infrastructure
	// NATS (analytics fan-out, optional)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis (usage log); fall back to the in-memory store when down
	var usageStore usage.Store
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Usage log falls back to memory", err)
		usageStore = usage.NewMemoryStore()
	} else {
		usageStore = usage.NewRedisStore(rdb)
	}

	// 7. Services
	publisherService := service.NewPublisherService(cfg.App.UsageTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.UsageTopicName,
		usageStore,
		natsPub,
		sysLogger,
	)

	searchService := service.NewSearchService(
		pipeline,
		eventRepo,
		contextRepo,
		publisherService,
		sysLogger,
	)

	// 8. Controllers
	searchController := controller.NewSearchController(searchService)

	return &Container{
		SearchController: searchController,
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
