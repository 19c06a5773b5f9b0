package main

import (
	"ContactHub/internal/config"
	"ContactHub/internal/handlers"
	"ContactHub/internal/middleware"
	"ContactHub/internal/repo"
	"ContactHub/internal/seed"
	"ContactHub/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userService := service.NewUserService(repo.NewUserRepository(gormDB))
	contactService := service.NewContactService(repo.NewContactRepository(gormDB), sugar)
	categoryService := service.NewCategoryService(repo.NewCategoryRepository(gormDB), cfg.CategoryCacheSize, cfg.CategoryCacheTTL, sugar)

	categories, err := seed.Categories()
	if err != nil {
		sugar.Fatalw("failed to load seed categories", "error", err)
	}
	if n, err := categoryService.Seed(ctx, categories); err != nil {
		sugar.Errorw("failed to seed categories", "error", err)
	} else if n > 0 {
		sugar.Infow("Seeded categories", "count", n)
	}

	h := handlers.NewHandler(userService, contactService, categoryService, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Starting server", "addr", srv.Addr)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"CategoryCacheSize", cfg.CategoryCacheSize,
		"CategoryCacheTTL", cfg.CategoryCacheTTL,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Graceful shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
