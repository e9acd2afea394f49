package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/forgestack/atlas-backend/internal/config"
	"github.com/forgestack/atlas-backend/internal/server"
)

func main() {
	// Missing .env is fine, the environment may be set by the host.
	_ = godotenv.Load()

	cfg := config.New()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
