package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

// MonthlyTrends buckets a value column by calendar month (YYYY-MM) of the
// parsed date column and aggregates sum, mean and count per bucket. Rows
// whose date could not be parsed are skipped; months with no data are not
// fabricated. The result is sorted ascending by month, and PercentChange
// carries the month-over-month change of the sum where defined.
func MonthlyTrends(dates []time.Time, values []float64) ([]entity.MonthlyTrend, error) {
	if len(dates) != len(values) {
		return nil, fmt.Errorf("date column has %d rows, value column has %d", len(dates), len(values))
	}

	buckets := make(map[string]*entity.MonthlyTrend)
	for i, d := range dates {
		if d.IsZero() {
			continue
		}
		month := d.Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &entity.MonthlyTrend{Month: month}
			buckets[month] = bucket
		}
		bucket.Sum += values[i]
		bucket.Count++
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	trend := make([]entity.MonthlyTrend, 0, len(months))
	for i, month := range months {
		bucket := buckets[month]
		bucket.Mean = bucket.Sum / float64(bucket.Count)

		// Variação percentual em relação ao mês anterior
		if i > 0 {
			prev := buckets[months[i-1]]
			if prev.Sum != 0 {
				change := ((bucket.Sum - prev.Sum) / prev.Sum) * 100.0
				bucket.PercentChange = &change
			}
		}
		trend = append(trend, *bucket)
	}

	return trend, nil
}
