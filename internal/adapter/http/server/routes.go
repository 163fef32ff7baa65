package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Temutjin2k/bike-sharing-dashboard/docs"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers, mode types.ServiceMode, log logger.Logger) {
	// System Health
	mux.HandleFunc("GET /health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux, mode, log)
	setupMetricsRoute(mux)

	switch mode {
	case types.DashboardService:
		setupDashboardRoutes(mux, routes)
	}
}

// setupDashboardRoutes setups routes for the dashboard service
func setupDashboardRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("GET /{$}", routes.dashboard.Page)                        // Dashboard page
	mux.HandleFunc("GET /charts/{chart}", routes.dashboard.Chart)            // Chart image
	mux.HandleFunc("GET /api/v1/bounds", routes.dashboard.GetBounds)         // Dataset date bounds
	mux.HandleFunc("GET /api/v1/hourly", routes.dashboard.GetHourly)         // Hourly views
	mux.HandleFunc("GET /api/v1/daily", routes.dashboard.GetDaily)           // Daily views
	mux.HandleFunc("GET /export/views.xlsx", routes.dashboard.ExportViews)   // xlsx export
	mux.HandleFunc("GET /assets/sidebar.png", routes.dashboard.SidebarImage) // Sidebar image
}

// setupSwaggerRoutes configures Swagger UI endpoints based on service mode
func setupSwaggerRoutes(mux *http.ServeMux, mode types.ServiceMode, log logger.Logger) {
	var instanceName string

	switch mode {
	case types.DashboardService:
		instanceName = "dashboard"
	default:
		log.Warn(wrap.WithAction(context.Background(), "setup swagger routes"), "unknown service mode for swagger setup", "mode", mode)
		return
	}

	// Swagger UI endpoint
	swaggerURL := httpSwagger.InstanceName(instanceName)
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
