package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fluxo/internal/backend"
	"fluxo/internal/config"
	apphttp "fluxo/internal/http"
	"fluxo/internal/ingest"
	applog "fluxo/internal/log"
	"fluxo/internal/services"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Level: slog.LevelInfo, Component: "fluxo"})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := backend.New(ctx, backend.Config{
		Type:                backend.Type(cfg.SourceBackend),
		SheetURL:            cfg.SheetURL,
		FilePath:            cfg.FilePath,
		GoogleSpreadsheetID: cfg.GoogleSpreadsheetID,
		GoogleSheetName:     cfg.GoogleSheetName,
		GoogleSheetRange:    cfg.GoogleSheetRange,
	}, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize source backend", "error", err, "backend", cfg.SourceBackend)
		os.Exit(1)
	}

	hints := ingest.Hints{
		Date:     cfg.DateColumn,
		Amount:   cfg.AmountColumn,
		Category: cfg.CategoryColumn,
	}
	reports := services.NewReportService(src, hints, time.Now)

	srv := apphttp.NewServer(":"+cfg.Port, reports)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting fluxo server", "port", cfg.Port, "backend", cfg.SourceBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
