package usecase

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
	"github.com/insurlytics/insurance-eda-go/internal/shared/types"
)

// zScoreThreshold é o corte |z| > 3 para o método de z-score.
const zScoreThreshold = 3.0

// DetectOutliers flags the outlier rows of a numeric column using the
// requested method.
func DetectOutliers(column string, values []float64, method string) (entity.OutlierReport, error) {
	switch method {
	case entity.OutlierMethodIQR:
		return DetectOutliersIQR(column, values), nil
	case entity.OutlierMethodZScore:
		return DetectOutliersZScore(column, values), nil
	default:
		return entity.OutlierReport{}, types.ErrUnknownOutlierMethod
	}
}

// DetectOutliersIQR flags values outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
func DetectOutliersIQR(column string, values []float64) entity.OutlierReport {
	report := entity.OutlierReport{Column: column, Method: entity.OutlierMethodIQR}
	if len(values) == 0 {
		return report
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q1 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	iqr := q3 - q1

	report.LowerBound = q1 - 1.5*iqr
	report.UpperBound = q3 + 1.5*iqr

	for i, v := range values {
		if v < report.LowerBound || v > report.UpperBound {
			report.Indices = append(report.Indices, i)
		}
	}
	report.Count = len(report.Indices)
	return report
}

// DetectOutliersZScore flags values with |z| above the threshold. A column
// with zero variance yields no outliers.
func DetectOutliersZScore(column string, values []float64) entity.OutlierReport {
	report := entity.OutlierReport{
		Column:    column,
		Method:    entity.OutlierMethodZScore,
		Threshold: zScoreThreshold,
	}
	if len(values) == 0 {
		return report
	}

	mean := stat.Mean(values, nil)
	stdDev := stat.StdDev(values, nil)
	if stdDev == 0 || math.IsNaN(stdDev) {
		return report
	}

	for i, v := range values {
		if math.Abs((v-mean)/stdDev) > zScoreThreshold {
			report.Indices = append(report.Indices, i)
		}
	}
	report.Count = len(report.Indices)
	return report
}
