package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gecko-kitchen/backend/config"
	"github.com/gecko-kitchen/backend/internal/api"
	"github.com/gecko-kitchen/backend/internal/database"
	applogger "github.com/gecko-kitchen/backend/internal/logger"
	"github.com/gecko-kitchen/backend/internal/repository"
	"github.com/gecko-kitchen/backend/internal/router"
	"github.com/gecko-kitchen/backend/internal/server"
	"github.com/gecko-kitchen/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := applogger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	recipeRepository := repository.NewPostgresRecipeRepository(db)
	recipeService := service.NewRecipeService(recipeRepository)
	recipeHandler := api.NewRecipeHandler(recipeService, logger)

	engine := router.SetupRouter(recipeHandler, logger)
	srv := server.New(cfg, engine, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
