package main

// @title FloatChat Backend API
// @version 1.0.0
// @description Backend for conversational exploration of ARGO oceanographic float data.
// @description
// @description Capabilities:
// @description - Natural-language queries over float positions, profiles and aggregates
// @description - Deterministic chart type and axis selection for tabular results
// @description - Relay route planning from a float to a destination port
// @description - Conversation sharing with QR codes
// @description - Emergency contact deep links from a float's last position

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/floatchat-backend/docs"
	"github.com/floatchat-backend/internal/catalog"
	"github.com/floatchat-backend/internal/config"
	httpDelivery "github.com/floatchat-backend/internal/delivery/http"
	"github.com/floatchat-backend/internal/delivery/http/handler"
	"github.com/floatchat-backend/internal/embedding"
	"github.com/floatchat-backend/internal/pkg/logger"
	"github.com/floatchat-backend/internal/repository/cache"
	"github.com/floatchat-backend/internal/repository/postgres"
	"github.com/floatchat-backend/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting FloatChat Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	summaryRepo := postgres.NewSummaryRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	if err := profileRepo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure profile schema", zap.Error(err))
	}
	if err := summaryRepo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure summary schema", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 7. Load port catalog
	ports, err := catalog.Load(cfg.Catalog.PortsFile)
	if err != nil {
		log.Fatal("Failed to load port catalog", zap.Error(err))
	}
	log.Info("Port catalog loaded", zap.Int("ports", ports.Size()))

	// 8. Initialize use cases
	encoder := embedding.NewEncoder()

	queryUC := usecase.NewQueryUseCase(
		profileRepo,
		summaryRepo,
		cacheRepo,
		ports,
		encoder,
		cfg.Cache.QueryCacheTTL,
		log,
	)
	chartUC := usecase.NewChartUseCase(log)
	routeUC := usecase.NewRouteUseCase(profileRepo, ports, log)
	shareUC := usecase.NewShareUseCase(cacheRepo, cfg.Share, log)
	emergencyUC := usecase.NewEmergencyUseCase(profileRepo, cfg.Emergency, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	queryHandler := handler.NewQueryHandler(queryUC, log)
	chartHandler := handler.NewChartHandler(chartUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	shareHandler := handler.NewShareHandler(shareUC, log)
	emergencyHandler := handler.NewEmergencyHandler(emergencyUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		queryHandler,
		chartHandler,
		routeHandler,
		shareHandler,
		emergencyHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
