package usecase

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

// AnalyzeDistribution computes the distribution statistics of a numeric
// column: moments (gonum/stat sample estimators) plus the quartiles.
func AnalyzeDistribution(column string, values []float64) entity.DistributionStats {
	stats := entity.DistributionStats{Column: column, Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	stats.Mean = stat.Mean(values, nil)
	stats.StdDev = stat.StdDev(values, nil)
	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	stats.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	stats.Q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	stats.Skewness = stat.Skew(values, nil)
	stats.Kurtosis = stat.ExKurtosis(values, nil)

	return stats
}
