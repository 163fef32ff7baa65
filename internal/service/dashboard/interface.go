package dashboard

import (
	"context"
	"io"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

/*=================Data sources======================*/

type DataLoader interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

type AssetLoader interface {
	Load(ctx context.Context) models.AssetResult
}

/*=================Presentation======================*/

type ChartRenderer interface {
	HourlyUsage(means []models.HourlyMean, l models.ChartLabels, format types.ImageFormat) ([]byte, error)
	DayTypeDistribution(dists []models.DayTypeDistribution, l models.ChartLabels, format types.ImageFormat) ([]byte, error)
	TemperatureScatter(points []models.TemperaturePoint, l models.ChartLabels, format types.ImageFormat) ([]byte, error)
	WeatherUsage(means []models.WeatherMean, l models.ChartLabels, format types.ImageFormat) ([]byte, error)
}

type ViewExporter interface {
	Write(w io.Writer, hourly *models.HourlyReport, daily *models.DailyReport, l models.CategoryLabels) error
}
