package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/baguette-hq/triage-server/internal/api"
	"github.com/baguette-hq/triage-server/internal/config"
	"github.com/baguette-hq/triage-server/internal/history"
	"github.com/baguette-hq/triage-server/internal/templates"
	"github.com/baguette-hq/triage-server/internal/triage"
	"github.com/baguette-hq/triage-server/pkg/cache"
	"github.com/baguette-hq/triage-server/pkg/httpserver"
)

type App struct {
	logger          *zap.Logger
	cache           *cache.Cache
	httpServer      *httpserver.Server
	shutdownTimeout time.Duration
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	var analyzer triage.Analyzer
	switch cfg.AnalyzerMode {
	case config.AnalyzerModeRules:
		analyzer = triage.NewRuleAnalyzer(logger)
	case config.AnalyzerModeCanned:
		analyzer = triage.NewCannedAnalyzer(logger)
	default:
		return nil, fmt.Errorf("unknown analyzer mode %q", cfg.AnalyzerMode)
	}
	logger.Info("Analyzer initialized", zap.String("mode", cfg.AnalyzerMode))

	responder := triage.NewTemplateResponder(logger)
	processor := triage.NewProcessor(analyzer, responder, templates.Default(), logger)

	var cacheClient *cache.Cache
	if cfg.CacheEnabled {
		var err error
		cacheClient, err = cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithPassword(cfg.RedisPassword),
			cache.WithDB(cfg.RedisDB),
		)
		if err != nil {
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	}

	resolutionLog := history.NewLog[triage.Resolution](cfg.HistorySize)

	// A typed nil must not reach the handlers as a non-nil interface.
	var cacher api.Cacher
	if cacheClient != nil {
		cacher = cacheClient
	}

	handlers := api.NewHandlers(processor, cacher, resolutionLog, logger,
		time.Duration(cfg.CacheTTLSeconds)*time.Second, cfg.BatchConcurrency)

	httpServer, err := httpserver.New(
		httpserver.WithAddr(cfg.HTTPAddr),
		httpserver.WithLogger(logger),
		httpserver.WithLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	httpServer.RegisterRoutes(handlers.RegisterRoutes)

	return &App{
		logger:          logger,
		cache:           cacheClient,
		httpServer:      httpServer,
		shutdownTimeout: time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.httpServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http server shutdown error", zap.Error(err))
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("cache shutdown error", zap.Error(err))
		}
	}

	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			a.logger.Warn("shutdown completed but deadline exceeded")
		}
	default:
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return nil
}
