package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"guild-manager/internal/adapters/discord"
	"guild-manager/internal/adapters/storage/postgres"
	"guild-manager/internal/adapters/tibiadata"
	"guild-manager/internal/adapters/tibiadata/api"
	"guild-manager/internal/config"
	"guild-manager/internal/core/ports"
	"guild-manager/internal/core/services/roster"
	"guild-manager/internal/handlers"
)

type App struct {
	config        *config.Config
	store         *postgres.GuildDocumentStore
	rosterService *roster.Service
	httpServer    *http.Server
	rosterCtx     context.Context
	rosterCancel  context.CancelFunc
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := postgres.NewGuildDocumentStore(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to storage", "error", err)
		return nil, err
	}

	source := tibiadata.NewAdapter(api.NewClient(), cfg)
	notifier := newNotifier(cfg)

	rosterService := roster.NewService(roster.Dependencies{
		Config:   cfg,
		Source:   source,
		Store:    store,
		Notifier: notifier,
	})

	h := handlers.NewHandlers(rosterService, store)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handlers.NewRouter(h, cfg.APISecret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		config:        cfg,
		store:         store,
		rosterService: rosterService,
		httpServer:    httpServer,
	}, nil
}

func newNotifier(cfg *config.Config) ports.NotificationService {
	if cfg.DiscordWebhookID == "" || cfg.DiscordWebhookToken == "" {
		slog.Info("No Discord webhook configured, notifications disabled")
		return discord.NopNotifier{}
	}
	notifier, err := discord.NewAdapter(cfg)
	if err != nil {
		slog.Error("Failed to create Discord webhook adapter, notifications disabled", "error", err)
		return discord.NopNotifier{}
	}
	return notifier
}

func (a *App) Run() error {
	if err := a.rosterService.Load(context.Background()); err != nil {
		slog.Error("Failed to load persisted document", "error", err)
		return err
	}

	a.rosterCtx, a.rosterCancel = context.WithCancel(context.Background())
	go a.rosterService.Start(a.rosterCtx)

	go func() {
		slog.Info("HTTP server listening", "addr", a.config.HTTPAddr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	slog.Info("Guild manager is online!", "guild", a.config.GuildName)
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	if a.rosterCancel != nil {
		a.rosterCancel()
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		}
	}

	if a.rosterService != nil {
		if err := a.rosterService.Flush(ctx); err != nil {
			slog.Error("Failed to flush document on shutdown", "error", err)
		}
	}

	if a.store != nil {
		a.store.Close()
	}

	return nil
}
