package repository

import (
	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

// ChartRepository renders the analysis output as static chart files and
// returns the path of each file written.
type ChartRepository interface {
	RenderLossRatioBars(segment entity.LossRatioSegment, outputDir string) (string, error)
	RenderHistogram(column string, values []float64, outputDir string) (string, error)
	RenderTrendLine(trend []entity.MonthlyTrend, valueColumn string, outputDir string) (string, error)
	RenderCorrelationHeatmap(matrix *entity.CorrelationMatrix, outputDir string) (string, error)
	RenderBoxPlot(column string, groups []entity.BoxGroup, outputDir string) (string, error)
}
