package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"flowmate/assistant"
	"flowmate/cmd/api/router"
	"flowmate/config"
	"flowmate/db"
	"flowmate/engine"
	"flowmate/eventbus"
	"flowmate/logger"
	"flowmate/quota"
	"flowmate/repositories"
	"flowmate/session"

	_ "flowmate/docs" // swag will generate this package
)

// @title           FlowMate Chat API
// @version         1.0
// @description     Conversation engine behind the FlowMate website chat widget
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()

	// 생성형 경로: 크레덴셜이 없으면 규칙 기반 전용으로 기동한다.
	var generator engine.Generator
	gen, err := assistant.New(ctx, os.Getenv("GEMINI_API_KEY"), cfg.GeminiModel)
	switch {
	case err == nil:
		generator = gen
	case errors.Is(err, assistant.ErrNoCredential):
		logger.Log.Warn("GEMINI_API_KEY not set, chatbot runs rule-based only")
	default:
		log.Fatal(err)
	}

	// Mongo 가 구성된 경우에만 생성 로그/리드 저장을 활성화한다.
	var logs engine.GenerationLogSink
	var leads *repositories.LeadRepository
	if cfg.Mongo.URI != "" {
		if err := db.Init(ctx); err != nil {
			log.Fatal(err)
		}
		logs = repositories.NewChatLogRepository(db.Database())
		leads = repositories.NewLeadRepository(db.Database())
	} else {
		logger.Log.Warn("mongo uri not set, generation logs and leads are not persisted")
	}

	var bus eventbus.Publisher = eventbus.Nop{}
	if cfg.Kafka.Enabled {
		kb, err := eventbus.NewKafkaEventBus(cfg.Kafka.BootstrapServers)
		if err != nil {
			log.Fatal(err)
		}
		defer kb.Close()
		bus = kb
	}

	store := session.NewStore(time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute)
	store.StartSweeper(time.Minute)
	defer store.Stop()

	limiter := quota.NewChatQuotaLimiter(cfg.ChatQuota.RequestsPerMinute, cfg.ChatQuota.RequestsPerDay)

	eng := engine.New(store, generator, limiter, logs, bus, engine.Config{
		GenerationTimeout:     time.Duration(cfg.Chat.GenerationTimeoutSeconds) * time.Second,
		HistoryLimit:          cfg.Chat.HistoryLimit,
		ReferencePackagePrice: cfg.Chat.ReferencePackagePrice,
	})

	r := router.New(eng, leads, bus)

	// 위젯은 마케팅 사이트 도메인에서 호출되므로 CORS 를 허용한다.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	if err := http.ListenAndServe(addr, corsHandler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
