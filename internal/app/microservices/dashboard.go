package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/bike-sharing-dashboard/config"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/asset"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/dataset"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/export"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/server"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/render"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/service/dashboard"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
)

type DashboardService struct {
	service    *dashboard.DashboardService
	httpServer *server.API
	cfg        config.Config
	log        logger.Logger
}

func NewDashboard(ctx context.Context, cfg config.Config, log logger.Logger) (*DashboardService, error) {
	loader := dataset.NewCSVLoader(cfg.Data.HourlyPath, cfg.Data.DailyPath)
	images := asset.NewImageLoader(cfg.Data.ImagePath, cfg.UI.SidebarWidth)
	store := dashboard.NewStore(loader, images, log)

	dashboardService := dashboard.NewDashboardService(
		store,
		render.New(cfg.UI.ChartWidth, cfg.UI.ChartHeight),
		export.NewXLSXWriter(),
		log,
	)

	httpServer, err := server.New(cfg, dashboardService, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &DashboardService{
		service:    dashboardService,
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *DashboardService) Start(ctx context.Context) error {
	// Load failures are remembered and shown on every page, so the server
	// starts anyway.
	loadCtx := wrap.WithAction(ctx, types.ActionLoadDataset)
	if err := s.service.Warmup(loadCtx); err != nil {
		s.log.Error(wrap.ErrorCtx(loadCtx, err), "dataset is unavailable, pages will show the error", err)
	}

	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "dashboard service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "Dashboard service has been started", "address", s.cfg.Server.Addr())

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	case <-ctx.Done():
		return nil
	}
}

func (s *DashboardService) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}
}
