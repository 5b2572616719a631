package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ricardoas/boleteiro/internal/boleto"
	boletoStore "github.com/ricardoas/boleteiro/internal/boleto/store"
	"github.com/ricardoas/boleteiro/internal/config"
	"github.com/ricardoas/boleteiro/internal/database"
	boleteiroHttp "github.com/ricardoas/boleteiro/internal/http"
	boletoHandler "github.com/ricardoas/boleteiro/internal/http/boleto"
	ingestHandler "github.com/ricardoas/boleteiro/internal/http/ingest"
	"github.com/ricardoas/boleteiro/internal/importer"
	"github.com/ricardoas/boleteiro/internal/maintenance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	policy, err := boleto.ParseDedupPolicy(cfg.Ingest.DedupPolicy)
	if err != nil {
		slog.Error("invalid dedup policy", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := boletoStore.New(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	var (
		boletoService = boleto.NewService(store, policy, cfg.Query.DueWindowDays)
		importService = importer.NewService()
	)

	scheduler := maintenance.NewScheduler(store, cfg.Backup.Dir,
		time.Duration(cfg.Backup.RetentionDays)*24*time.Hour)
	if err := scheduler.Start(cfg.Backup.CronSpec); err != nil {
		slog.Error("failed to start maintenance scheduler", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	var (
		boletosH = boletoHandler.NewHandler(boletoService)
		ingestH  = ingestHandler.NewHandler(importService, boletoService)
	)

	router := boleteiroHttp.New(boletosH, ingestH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "dedup_policy", policy)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
