package main

import (
	"HomeStock/internal/config"
	"HomeStock/internal/handlers"
	"HomeStock/internal/middleware"
	"HomeStock/internal/repo"
	"HomeStock/internal/service"
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
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)

	userService := service.NewUserService(userRepo)
	catalog := service.NewCatalogService(
		repo.NewListRepository(gormDB),
		itemRepo,
		repo.NewImageRepository(gormDB),
		cfg.PageSize,
		sugar,
	)
	ledger := service.NewLedgerService(itemRepo, service.ParseDecrementPolicy(cfg.DecrementPolicy), sugar)

	h := handlers.NewHandler(userService, catalog, ledger, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDriver", gormDB.Dialector.Name(),
		"PageSize", cfg.PageSize,
		"DecrementPolicy", ledger.Policy(),
		"ImageMaxSizeMB", cfg.ImageMaxSizeMB,
	)
	sugar.Infow("Starting server", "addr", srv.Addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
