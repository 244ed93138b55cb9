package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"assesshub/internal/domain/assessment"
	"assesshub/internal/domain/dashboard"
	"assesshub/internal/domain/directory"
	"assesshub/internal/platform/cache"
	"assesshub/internal/platform/config"
	"assesshub/internal/platform/db"
	"assesshub/internal/platform/metrics"
	"assesshub/internal/transport/http/api"
	assessmenthandler "assesshub/internal/transport/http/handlers/assessment"
	dashboardhandler "assesshub/internal/transport/http/handlers/dashboard"
	directoryhandler "assesshub/internal/transport/http/handlers/directory"
	"assesshub/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Cache  *cache.Cache
	Router chi.Router

	collector *metrics.Collector
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	app := &App{Config: cfg, DB: pool}

	if cfg.RedisAddr != "" {
		redisCache, err := cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithPassword(cfg.RedisPassword),
			cache.WithDB(cfg.RedisDB),
		)
		if err != nil {
			slog.Warn("redis unavailable, dashboard caching disabled", "err", err, "addr", cfg.RedisAddr)
		} else {
			app.Cache = redisCache
		}
	}

	if cfg.MetricsEnabled {
		app.collector = metrics.New()
	}

	app.Router = app.buildRouter()
	return app, nil
}

func (a *App) buildRouter() chi.Router {
	dashboardStore := dashboard.NewStore(a.DB)
	dashboardService := dashboard.NewService(dashboardStore, dashboardStore, dashboardStore)
	if a.Cache != nil {
		dashboardService = dashboardService.WithCache(a.Cache, a.Config.DashboardCacheTTL)
	}

	directoryService := directory.NewService(directory.NewStore(a.DB))
	assessmentService := assessment.NewService(assessment.NewStore(a.DB))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))
	router.Use(middleware.RateLimit(a.Config.RateLimitPerMinute, time.Minute))
	if a.collector != nil {
		router.Use(middleware.Metrics(a.collector))
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "not_found", "resource not found", middleware.GetRequestID(r.Context()))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", middleware.GetRequestID(r.Context()))
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, map[string]string{"status": "ok"}, middleware.GetRequestID(r.Context()))
	})
	router.Get("/readyz", a.ready)
	router.Get("/metrics", a.metricsSnapshot)

	dashboardhandler.NewHandler(dashboardService).RegisterRoutes(router)
	directoryhandler.NewHandler(directoryService).RegisterRoutes(router)
	assessmenthandler.NewHandler(assessmentService, a.Config.InviteSecret, a.Config.InviteTTL).RegisterRoutes(router)

	return router
}

func (a *App) ready(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.DB.Ping(ctx); err != nil {
		api.Fail(w, http.StatusServiceUnavailable, "not_ready", "database unreachable", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "ready"}, reqID)
}

func (a *App) metricsSnapshot(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if a.collector == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "metrics disabled", reqID)
		return
	}
	api.Success(w, a.collector.Snapshot(), reqID)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", a.Config.Addr, "env", a.Config.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *App) Close() {
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			slog.Warn("close cache failed", "err", err)
		}
	}
	a.DB.Close()
}
