package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"careerconnect/gateway/internal/cache"
	"careerconnect/gateway/internal/config"
	"careerconnect/gateway/internal/credstore"
	"careerconnect/gateway/internal/handlers"
	"careerconnect/gateway/internal/log"
	"careerconnect/gateway/internal/server"
	"careerconnect/gateway/internal/session"
	"careerconnect/gateway/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	var (
		store       credstore.Store
		redisClient *redis.Client
	)
	switch cfg.Credentials.Backend {
	case "redis":
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		store = credstore.NewRedisStore(redisClient, cfg.Credentials.Namespace)
	default:
		store, err = credstore.NewFileStore(cfg.Credentials.Path)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open credential store")
		}
	}

	sessions := session.NewService(ctx, store, logger)

	watcher := session.NewWatcher(sessions, logger)
	if err := watcher.Start(cfg.Session.WatchInterval); err != nil {
		logger.Error().Err(err).Msg("session watcher start failed")
	}

	api, err := upstream.NewClient(upstream.Options{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Tokens:  sessions,
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build upstream client")
	}

	handlerSet := handlers.NewHandlerSet(logger, cfg, sessions, api)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("gateway failed")
		}
	}()

	waitForShutdown(logger, httpServer, watcher, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, watcher *session.Watcher, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	<-watcher.Stop().Done()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("gateway exited cleanly")
}
