// Package server assembles the HTTP console from configuration.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"legaldesk/internal/app/server/api"
	"legaldesk/internal/config"
	"legaldesk/internal/domain/advisory"
	"legaldesk/internal/domain/delivery"
	"legaldesk/internal/domain/document"
	"legaldesk/internal/domain/session"
	"legaldesk/internal/infrastructure/gemini"
	"legaldesk/internal/infrastructure/migration"
	"legaldesk/internal/infrastructure/storage"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

type App struct {
	cfg      *config.Config
	log      *slog.Logger
	store    *storage.DB
	sessions *session.Manager
	ai       *gemini.Client
	http     *http.Server
}

// New migrates and opens the store and wires every component. A missing
// Gemini key disables the AI endpoints instead of failing startup.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := migration.NewMigration(cfg.DB, nil).Up(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:      cfg,
		log:      log,
		store:    store,
		sessions: session.NewManager(cfg.Session.TTL, log),
	}

	var advisor advisory.Advisor
	if cfg.AI.APIKey != "" {
		app.ai, err = gemini.New(ctx, gemini.Config{
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			Timeout: cfg.AI.Timeout,
		}, log)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		advisor = app.ai
	} else {
		log.Warn("GEMINI_API_KEY is not set, AI endpoints are disabled")
	}

	if cfg.Mail.SenderEmail == "" {
		log.Warn("SENDER_EMAIL is not set, sending mail will fail")
	}
	sender := delivery.NewSMTPService(delivery.RelayConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.SenderEmail,
		Password: cfg.Mail.SenderPassword,
	}, log)

	mux := api.New(api.Deps{
		Store:    store,
		Sessions: app.sessions,
		Cookie:   cfg.Session,
		Renderer: document.NewPDFRenderer(log),
		Sender:   sender,
		Advisor:  advisor,
	}, log)

	app.http = &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return app, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	go a.sessions.Run(ctx, sweepInterval)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started", "address", a.cfg.Server.RunAddress, "env", a.cfg.Env)
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.http.Shutdown(shutdownCtx)
	a.close()
	return err
}

func (a *App) close() {
	if a.ai != nil {
		if err := a.ai.Close(); err != nil {
			a.log.Warn("close gemini client", "error", err)
		}
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn("close store", "error", err)
	}
}
