package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Temutjin2k/bike-sharing-dashboard/config"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/handler"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/middleware"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
)

const defaultShutdownTimeout = 5 * time.Second

type API struct {
	mode   types.ServiceMode
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health    *handler.Health
	dashboard *handler.Dashboard
}

func New(cfg config.Config, dashboardService handler.DashboardService, logger logger.Logger) (*API, error) {
	if dashboardService == nil {
		return nil, errors.New("dashboard service is required")
	}

	mode := types.DashboardService
	handlers := &handlers{
		health:    handler.NewHealth(string(mode), logger),
		dashboard: handler.NewDashboard(dashboardService, cfg.UI.Locale, logger),
	}

	api := &API{
		mode: mode,

		mux:    http.NewServeMux(),
		routes: handlers,
		m:      middleware.NewMiddleware(logger),
		addr:   cfg.Server.Addr(),
		cfg:    cfg,
		log:    logger,
	}

	api.server = &http.Server{
		Addr:         api.addr,
		Handler:      api.withMiddleware(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(logger.GetSlogLogger().Handler(), slog.LevelWarn),
	}

	setupRoutes(api.mux, api.routes, api.mode, api.log)

	return api, nil
}

// Handler returns the mux wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

func (a *API) Stop(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ctx = wrap.WithAction(ctx, types.ActionServerShutdown)

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, types.ActionServerStart)
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux. Metrics has to sit right
// above the mux to see the matched route pattern.
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(string(a.mode))(a.mux))))
}
