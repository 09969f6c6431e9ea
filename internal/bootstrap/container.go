package bootstrap

import (
	"context"
	"log"

	"brandlaunch-be/internal/config"
	"brandlaunch-be/internal/controller"
	"brandlaunch-be/internal/handler"
	"brandlaunch-be/internal/pkg/logger"
	"brandlaunch-be/internal/pkg/mailer"
	"brandlaunch-be/internal/repository/memory"
	"brandlaunch-be/internal/repository/unitofwork"
	"brandlaunch-be/internal/service"
	"brandlaunch-be/internal/websocket"
	"brandlaunch-be/pkg/producer/factory"

	pktNats "brandlaunch-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DemoController       controller.IDemoController
	OnboardingController controller.IOnboardingController

	// Background Services (Exposed for main.go to run)
	GatherService service.IGatherService

	// WebSockets & Notification
	ProgressHandler *handler.ProgressHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// Intelligence producers
	producers := factory.NewRegistry(cfg.Producers)

	// In-memory stage snapshot cache
	stageRepo := memory.NewStageRepository()

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/progress.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.GatherTopic)
	gatherService := service.NewGatherService(
		pubSub,
		cfg.App.GatherTopic,
		uowFactory,
		producers,
		wsHub,
		natsPub,
	)

	demoService := service.NewDemoService(uowFactory, producers, natsPub, sysLogger)
	consultationService := service.NewConsultationService(
		uowFactory,
		producers,
		publisherService,
		natsPub,
		emailService,
		stageRepo,
		cfg.Flow,
		sysLogger,
	)

	// 3.5 Notification System
	notifService := service.NewNotificationService(wsHub, wsLogger)
	if natsSub != nil {
		if err := notifService.Start(natsSub); err != nil {
			log.Printf("[WARN] Failed to start notification service: %v", err)
		}
	}

	progressHandler := handler.NewProgressHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		DemoController:       controller.NewDemoController(demoService),
		OnboardingController: controller.NewOnboardingController(consultationService),

		GatherService: gatherService,

		ProgressHandler: progressHandler,
		WebSocketHub:    wsHub,
	}
}
