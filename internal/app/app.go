// Package app wires configuration, adapters, services, and transport
// into a running API server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/hanscope/internal/adapter/pinyin"
	postgres "github.com/heartmarshall/hanscope/internal/adapter/postgres"
	wordlistrepo "github.com/heartmarshall/hanscope/internal/adapter/postgres/wordlist"
	"github.com/heartmarshall/hanscope/internal/adapter/segmenter/jieba"
	"github.com/heartmarshall/hanscope/internal/config"
	"github.com/heartmarshall/hanscope/internal/service/analysis"
	"github.com/heartmarshall/hanscope/internal/service/wordlist"
	"github.com/heartmarshall/hanscope/internal/transport/middleware"
	"github.com/heartmarshall/hanscope/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the segmenter and services, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	seg := jieba.New(cfg.Segmenter)
	defer seg.Close()

	renderer := pinyin.NewRenderer()

	wordsRepo := wordlistrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	analysisSvc := analysis.NewService(logger, wordsRepo, seg, renderer, cfg.Analyzer)
	wordlistSvc := wordlist.NewService(logger, wordsRepo, txManager, cfg.WordList)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(cfg.Server, cfg.CORS, logger, rest.RouterDeps{
		Analyze: rest.NewAnalyzeHandler(analysisSvc, logger),
		Words:   rest.NewWordsHandler(wordlistSvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
