package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pdfcheck/internal/analysis"
	"pdfcheck/internal/config"
	"pdfcheck/internal/export"
	"pdfcheck/internal/handler"
	"pdfcheck/internal/llm"
	"pdfcheck/internal/llm/providers"
	"pdfcheck/internal/logging"
	"pdfcheck/internal/router"
	"pdfcheck/internal/service"
	"pdfcheck/internal/storage"
	"pdfcheck/internal/store"
)

// @title pdfcheck API
// @version 1.0
// @description Checklist generation and checklist-based verification of PDF documents.
// @BasePath /api/v1
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name pdf-auth-token
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	kv, err := storage.New(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeQuietly(kv, "storage", logger)

	history := store.NewHistoryStore(kv, logger)
	checklists := store.NewChecklistStore(kv, logger)
	if err := history.Load(ctx); err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if err := checklists.Load(ctx); err != nil {
		return fmt.Errorf("failed to load saved checklists: %w", err)
	}
	if err := seedPresets(ctx, checklists, cfg.Checklists.PresetsFile, logger); err != nil {
		return err
	}
	logger.Info("history loaded",
		zap.String("backend", cfg.Storage.Backend),
		zap.Int("entries", len(history.Snapshot().History)))
	unsubscribe := history.Subscribe(func(st store.HistoryState) {
		logger.Debug("history changed", zap.Int("entries", len(st.History)))
	})
	defer unsubscribe()

	// Initialize model client
	providers.Register()
	client, err := llm.NewClientWithFallback(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize model client: %w", err)
	}
	defer closeQuietly(client, "model client", logger)
	logger.Info("model backend ready", zap.String("model", client.Name()))

	// Initialize services
	authSvc, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize auth: %w", err)
	}
	if cfg.Auth.Password == "" {
		logger.Warn("no access password configured; login is disabled")
	}
	if cfg.Auth.SessionSecret == "" {
		logger.Warn("no session secret configured; using a random one, sessions end on restart")
	}
	analyzer := analysis.NewAnalyzer(client, logger)
	analysisSvc := service.NewAnalysisService(analyzer, history, logger)
	historySvc := service.NewHistoryService(history, export.NewRenderer(time.Local))
	checklistSvc := service.NewChecklistService(checklists)

	// Initialize handlers
	maxUpload := cfg.Upload.MaxBytes()
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, cfg.Auth.CookieName, cfg.Server.IsProduction()),
		Analysis:  handler.NewAnalysisHandler(analysisSvc, maxUpload),
		History:   handler.NewHistoryHandler(historySvc),
		Checklist: handler.NewChecklistHandler(checklistSvc, maxUpload),
		Health:    handler.NewHealthHandler(kv),
	}

	// Setup router
	r := router.Setup(cfg, logger, authSvc, handlers)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func seedPresets(ctx context.Context, checklists *store.ChecklistStore, path string, logger *zap.Logger) error {
	presets, err := store.LoadPresets(path)
	if err != nil {
		return fmt.Errorf("failed to load checklist presets: %w", err)
	}
	if len(presets) == 0 {
		return nil
	}
	n, err := checklists.SeedPresets(ctx, presets)
	if err != nil {
		return fmt.Errorf("failed to seed checklist presets: %w", err)
	}
	if n > 0 {
		logger.Info("seeded checklist presets", zap.Int("count", n), zap.String("file", path))
	}
	return nil
}

// closeQuietly closes v if it holds resources and logs a failure.
func closeQuietly(v any, component string, logger *zap.Logger) {
	closer, ok := v.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn("close failed", zap.String("component", component), zap.Error(err))
	}
}
