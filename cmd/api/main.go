package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripbuddy_backend/internal/concierge"
	"tripbuddy_backend/internal/concierge/agent"
	conservice "tripbuddy_backend/internal/concierge/service"
	"tripbuddy_backend/internal/directions"
	dirservice "tripbuddy_backend/internal/directions/service"
	"tripbuddy_backend/internal/email"
	"tripbuddy_backend/internal/events"
	"tripbuddy_backend/internal/flights"
	fltservice "tripbuddy_backend/internal/flights/service"
	"tripbuddy_backend/internal/history"
	apphttp "tripbuddy_backend/internal/http"
	"tripbuddy_backend/internal/http/router"
	"tripbuddy_backend/internal/knowledge"
	knowledgehandler "tripbuddy_backend/internal/knowledge/handler"
	"tripbuddy_backend/internal/poi"
	"tripbuddy_backend/internal/scheduler"
	"tripbuddy_backend/internal/weather"
	"tripbuddy_backend/platform/ai/embeddings"
	"tripbuddy_backend/platform/ai/openaichat"
	"tripbuddy_backend/platform/cache"
	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/db"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/qdrant"
	"tripbuddy_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Response cache for upstream travel APIs
	var apiCache *cache.Cache
	if cfg.IsCacheEnabled() {
		apiCache, err = cache.New(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Error("failed to initialize cache", "error", err)
			panic("failed to initialize cache: " + err.Error())
		}
		defer apiCache.Close()
		log.Info("response cache initialized", "ttl", cfg.CacheTTL)
	} else {
		log.Warn("REDIS_URL not configured; response caching disabled")
	}

	// OpenAI-compatible chat model, shared by the LLM router, the parameter
	// extractors and agent mode
	var chatModel *openaichat.ChatModel
	if cfg.IsLLMEnabled() {
		chatModel = openaichat.NewModel(openaichat.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.ConciergeModel,
		})
		log.Info("chat model initialized", "model", cfg.ConciergeModel)
	} else {
		log.Warn("OPENAI_API_KEY not configured; llm and agent modes disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	adapters := map[conservice.Branch]conservice.Answerer{}
	agentDeps := &agent.ToolDependencies{}

	var poiModule *poi.Module
	if cfg.IsPOIEnabled() {
		poiModule = poi.New(cfg, apiCache, val, log)
		adapters[conservice.BranchPOI] = poiModule.Service
		agentDeps.POI = poiModule.Service
	} else {
		log.Warn("TRIPADVISOR_API_KEY not configured; poi module disabled")
	}

	var weatherModule *weather.Module
	if cfg.IsWeatherEnabled() {
		weatherModule = weather.New(cfg, apiCache, val, log)
		adapters[conservice.BranchWeather] = weatherModule.Service
		agentDeps.Weather = weatherModule.Service
	} else {
		log.Warn("OPENWEATHERMAP_API_KEY not configured; weather module disabled")
	}

	var directionsModule *directions.Module
	if cfg.IsDirectionsEnabled() {
		var extractor dirservice.Completer
		if chatModel != nil {
			extractor = chatModel
		}
		directionsModule = directions.New(cfg, extractor, log)
		adapters[conservice.BranchRoute] = directionsModule.Service
		agentDeps.Route = directionsModule.Service
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY not configured; directions module disabled")
	}

	var flightsModule *flights.Module
	if cfg.IsFlightsEnabled() {
		var extractor fltservice.Completer
		if chatModel != nil {
			extractor = chatModel
		}
		flightsModule = flights.New(cfg, extractor, val, log)
		adapters[conservice.BranchFlights] = flightsModule.Service
		agentDeps.Flights = flightsModule.Service
	} else {
		log.Warn("Amadeus credentials not configured; flights module disabled")
	}

	var knowledgeModule *knowledge.Module
	if cfg.IsQdrantEnabled() && cfg.IsLLMEnabled() {
		embedder := embeddings.NewClient(embeddings.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.EmbeddingModel,
		})
		vectorStore := qdrant.NewClient(qdrant.Config{
			BaseURL:    cfg.QdrantURL,
			APIKey:     cfg.QdrantAPIKey,
			Collection: cfg.QdrantCollection,
		})
		if err := withRetry(ctx, log, "qdrant collection", 5, 2*time.Second, func() error {
			return vectorStore.EnsureCollection(ctx, embeddings.Dimension)
		}); err != nil {
			log.Error("failed to ensure qdrant collection", "error", err)
			panic("failed to ensure qdrant collection: " + err.Error())
		}

		var enqueuer knowledgehandler.Enqueuer
		jobClient, closeJobs := initJobClient(cfg, log)
		if closeJobs != nil {
			defer closeJobs()
		}
		if jobClient != nil {
			enqueuer = jobClient
		}

		knowledgeModule = knowledge.New(embedder, vectorStore, enqueuer, val, log)
		adapters[conservice.BranchKnowledge] = knowledgeModule.Service
		agentDeps.Knowledge = knowledgeModule.Service
	} else {
		log.Warn("qdrant or llm not configured; knowledge module disabled")
	}

	// Concierge: keyword router, optional LLM router, optional agent mode
	keywordRouter, err := conservice.NewRouter(cfg.RouterRulesPath, flightsModule != nil)
	if err != nil {
		log.Error("failed to load router rules", "error", err, "path", cfg.RouterRulesPath)
		panic("failed to load router rules: " + err.Error())
	}

	var llmRouter *conservice.LLMRouter
	var agentRunner conservice.AgentRunner
	if chatModel != nil {
		llmRouter = conservice.NewLLMRouter(chatModel, keywordRouter, log)

		conciergeAgent, err := agent.New(chatModel, agentDeps, log)
		if err != nil {
			log.Error("failed to initialize agent", "error", err)
			panic("failed to initialize agent: " + err.Error())
		}
		agentRunner = conciergeAgent
	}

	var sender email.Sender
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
		log.Info("email sender initialized", "host", cfg.SMTPHost)
	} else {
		log.Warn("email disabled; answer sharing unavailable")
	}

	conciergeService := conservice.New(keywordRouter, llmRouter, agentRunner, adapters, eventBus, log)
	conciergeModule := concierge.New(conciergeService, sender, val, log)

	historyModule := history.New(pool, eventBus, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	modules := []apphttp.Module{conciergeModule, historyModule}
	if poiModule != nil {
		modules = append(modules, poiModule)
	}
	if weatherModule != nil {
		modules = append(modules, weatherModule)
	}
	if directionsModule != nil {
		modules = append(modules, directionsModule)
	}
	if flightsModule != nil {
		modules = append(modules, flightsModule)
	}
	if knowledgeModule != nil {
		modules = append(modules, knowledgeModule)
	}

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules:  modules,
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initJobClient(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; background indexing disabled")
		return nil, nil
	}

	jobClient, err := scheduler.NewClient(cfg, log)
	if err != nil {
		log.Error("failed to initialize job client", "error", err)
		return nil, nil
	}

	return jobClient, func() {
		_ = jobClient.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
