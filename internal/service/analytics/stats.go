package analytics

import (
	"math"
	"slices"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const whiskerIQR = 1.5

// mean is the arithmetic mean of xs, or 0 for no values.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// boxStats computes quartiles, 1.5 IQR whiskers and outliers of xs.
func boxStats(xs []float64) models.BoxStats {
	if len(xs) == 0 {
		return models.BoxStats{Outliers: []float64{}}
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	box := models.BoxStats{
		Min:      floats.Min(sorted),
		Max:      floats.Max(sorted),
		Q1:       quantile(sorted, 0.25),
		Median:   quantile(sorted, 0.5),
		Q3:       quantile(sorted, 0.75),
		Outliers: []float64{},
	}

	iqr := box.Q3 - box.Q1
	lowFence := box.Q1 - whiskerIQR*iqr
	highFence := box.Q3 + whiskerIQR*iqr

	box.LowerWhisker = box.Q1
	box.UpperWhisker = box.Q3
	for _, x := range sorted {
		if x < lowFence || x > highFence {
			box.Outliers = append(box.Outliers, x)
			continue
		}
		if x < box.LowerWhisker {
			box.LowerWhisker = x
		}
		if x > box.UpperWhisker {
			box.UpperWhisker = x
		}
	}

	return box
}

// quantile is the p-quantile of sorted, linearly interpolated between the two
// ranks around h = (n-1)p. The median of 1,2,3,4 is 2.5.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))

	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
