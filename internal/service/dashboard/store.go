package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/metrics"
)

// Store loads the dataset and the sidebar image at most once per process and
// hands out the same result afterwards, failures included. The dataset is
// read-only once loaded, so callers share it without locking.
type Store struct {
	loader DataLoader
	assets AssetLoader
	l      logger.Logger

	datasetOnce sync.Once
	dataset     *models.Dataset
	datasetErr  error

	assetOnce sync.Once
	asset     models.AssetResult
}

func NewStore(loader DataLoader, assets AssetLoader, l logger.Logger) *Store {
	return &Store{
		loader: loader,
		assets: assets,
		l:      l,
	}
}

// Dataset returns the memoized dataset or the memoized load error.
func (s *Store) Dataset(ctx context.Context) (*models.Dataset, error) {
	s.datasetOnce.Do(func() {
		// a canceled request must not poison the cache
		ctx := wrap.WithAction(context.WithoutCancel(ctx), types.ActionLoadDataset)

		s.dataset, s.datasetErr = s.loader.Load(ctx)
		metrics.RecordDatasetLoad(s.datasetErr)

		if s.datasetErr != nil {
			var notFound *types.DataNotFoundError
			if errors.As(s.datasetErr, &notFound) {
				s.l.Error(ctx, "data files not found", s.datasetErr, "missing", notFound.Missing)
				return
			}
			s.l.Error(ctx, "failed to load dataset", s.datasetErr)
			return
		}

		metrics.DatasetRows.WithLabelValues(types.DatasetHourly).Set(float64(len(s.dataset.Hourly)))
		metrics.DatasetRows.WithLabelValues(types.DatasetDaily).Set(float64(len(s.dataset.Daily)))
		s.l.Info(ctx, "dataset loaded",
			"hourly_rows", len(s.dataset.Hourly),
			"hourly_range", s.dataset.HourlyBounds.String(),
			"daily_rows", len(s.dataset.Daily),
			"daily_range", s.dataset.DailyBounds.String(),
		)
	})

	return s.dataset, s.datasetErr
}

// Sidebar returns the memoized sidebar image. A warning is logged once.
func (s *Store) Sidebar(ctx context.Context) models.AssetResult {
	s.assetOnce.Do(func() {
		ctx := wrap.WithAction(context.WithoutCancel(ctx), types.ActionLoadAsset)

		if s.assets == nil {
			s.asset = models.AssetWarning("no sidebar image configured", "")
		} else {
			s.asset = s.assets.Load(ctx)
		}

		if !s.asset.OK() {
			metrics.AssetWarningsTotal.WithLabelValues("sidebar").Inc()
			s.l.Warn(ctx, sidebarWarning(s.asset))
		}
	})

	return s.asset
}

// sidebarWarning is the log line for an unavailable asset, e.g.
// "Could not load bike image: open bike.png: no such file or directory".
func sidebarWarning(a models.AssetResult) string {
	if a.Detail == "" {
		return a.Warning
	}
	return a.Warning + ": " + a.Detail
}
