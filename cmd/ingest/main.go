package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/config"
	"github.com/floatchat-backend/internal/embedding"
	ftpClient "github.com/floatchat-backend/internal/infrastructure/ftp"
	"github.com/floatchat-backend/internal/ingest"
	"github.com/floatchat-backend/internal/pkg/logger"
	"github.com/floatchat-backend/internal/repository/postgres"
	"github.com/floatchat-backend/internal/worker"
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

	log.Info("Starting ARGO ingest")

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel on SIGINT/SIGTERM so a long mirror or decode can be
	// interrupted cleanly.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("Shutdown signal received")
		cancel()
	}()

	// 4. Mirror the FTP archive
	client := ftpClient.NewClient(cfg.Ingest.FTPHost, cfg.Ingest.FTPTimeout, log)
	downloaded, err := client.MirrorDirectory(ctx, cfg.Ingest.FTPRootPath, cfg.Ingest.DataDir)
	if err != nil {
		// Local files may still be decodable, so a failed mirror is
		// not fatal.
		log.Warn("FTP mirror incomplete", zap.Int("downloaded", downloaded), zap.Error(err))
	}

	// 5. Decode and load
	profileRepo := postgres.NewProfileRepository(db)
	summaryRepo := postgres.NewSummaryRepository(db)

	ingestWorker := ingest.NewWorker(
		cfg.Ingest.DataDir,
		cfg.Ingest.Workers,
		profileRepo,
		summaryRepo,
		embedding.NewEncoder(),
		log,
	)

	manager := worker.NewWorkerManager(log)
	manager.Register(ingestWorker)

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// The ingest worker exits on its own once every file is processed.
	manager.Wait()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	log.Info("Ingest complete")
}
