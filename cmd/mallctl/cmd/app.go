package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hqh-mall/mallclient/internal/adapter/outbound/api"
	"github.com/hqh-mall/mallclient/internal/adapter/outbound/state"
	"github.com/hqh-mall/mallclient/internal/adapter/outbound/term"
	"github.com/hqh-mall/mallclient/internal/config"
	"github.com/hqh-mall/mallclient/internal/port/outbound"
	"github.com/hqh-mall/mallclient/internal/service"
)

// app bundles the wired components every command needs.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	client   *api.Client
	sessions *service.SessionService
	shops    *service.ShopService
	cart     *service.CartService
	nav      *term.Navigator
	closers  []func() error
}

// buildApp wires configuration, storage, the session, and the API client.
// Every command goes through here so the pipeline and its auth-failure
// handling behave identically everywhere.
func buildApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	if file := config.ConfigFileUsed(); file != "" {
		logger.Debug("loaded config", "file", file)
	}

	a := &app{cfg: cfg, logger: logger}

	var store outbound.StateStore
	switch cfg.State.Backend {
	case "sqlite":
		s, err := state.NewSQLiteStore(filepath.Join(cfg.State.Dir, "state.db"), logger)
		if err != nil {
			return nil, fmt.Errorf("open state database: %w", err)
		}
		a.closers = append(a.closers, s.Close)
		store = s
	default:
		s, err := state.NewFileStore(cfg.State.Dir, logger)
		if err != nil {
			return nil, fmt.Errorf("open state directory: %w", err)
		}
		store = s
	}

	a.sessions = service.NewSessionService(store, logger)
	a.sessions.Rehydrate()

	a.nav = term.NewNavigator(os.Stderr, cfg.API.LoginPath)

	var metrics *api.Metrics
	if cfg.Metrics.Enabled {
		metrics = api.NewMetrics(prometheus.NewRegistry())
	}

	evictor := api.NewEvictor(a.sessions, a.nav, cfg.API.LoginPath, logger, metrics)

	a.client = api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.RequestTimeout(),
		Tokens:  a.sessions,
		Logger:  logger,
	},
		api.WithMetrics(metrics),
		api.WithUnauthenticatedHook(evictor.Handle),
		api.WithRouteCompensation(cfg.API.CompensateMissingRoutes),
	)

	a.shops = service.NewShopService(a.client, store, cfg.API.ImageBaseURL, logger)
	a.shops.Rehydrate()

	a.cart = service.NewCartService(logger)

	return a, nil
}

// enterAuthenticated records the surface a command operates on and applies
// the guard: without an active session the user is redirected to login
// before any backend call happens.
func (a *app) enterAuthenticated(path string) error {
	a.nav.Enter(path)
	if a.sessions.IsActive() {
		return nil
	}
	a.nav.RedirectToLogin(path, outbound.ReasonUnauthenticated)
	return errors.New("not logged in")
}

// Close releases resources held by the app.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn("closing resource failed", "error", err)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
