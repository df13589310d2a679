package chart

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

func assertPNG(t *testing.T, path string) {
	t.Helper()
	assert.True(t, strings.HasSuffix(path, ".png"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderLossRatioBars(t *testing.T) {
	repo := NewChartRepository()
	ratio := 0.5
	segment := entity.LossRatioSegment{
		Column: "Province",
		Rows: []entity.LossRatioRow{
			{Group: "Gauteng", LossRatio: &ratio},
			{Group: "Free State"}, // razão indefinida vira barra zero
		},
	}

	path, err := repo.RenderLossRatioBars(segment, t.TempDir())
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestRenderHistogram(t *testing.T) {
	repo := NewChartRepository()
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 10}

	path, err := repo.RenderHistogram("TotalClaims", values, t.TempDir())
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestRenderHistogramEmpty(t *testing.T) {
	repo := NewChartRepository()

	_, err := repo.RenderHistogram("TotalClaims", nil, t.TempDir())
	assert.Error(t, err)
}

func TestRenderTrendLine(t *testing.T) {
	repo := NewChartRepository()
	trend := []entity.MonthlyTrend{
		{Month: "2015-01", Sum: 150},
		{Month: "2015-02", Sum: 200},
		{Month: "2015-03", Sum: 100},
	}

	path, err := repo.RenderTrendLine(trend, "TotalClaims", t.TempDir())
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestRenderCorrelationHeatmap(t *testing.T) {
	repo := NewChartRepository()
	matrix := &entity.CorrelationMatrix{
		Columns: []string{"TotalPremium", "TotalClaims"},
		Matrix:  [][]float64{{1, 0.8}, {0.8, 1}},
	}

	path, err := repo.RenderCorrelationHeatmap(matrix, t.TempDir())
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestRenderBoxPlot(t *testing.T) {
	repo := NewChartRepository()
	groups := []entity.BoxGroup{
		{Label: "Gauteng", Values: []float64{10, 20, 30, 40}},
		{Label: "Western Cape", Values: []float64{5, 15, 25}},
	}

	path, err := repo.RenderBoxPlot("TotalClaims", groups, t.TempDir())
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "total_claims", sanitize("Total Claims"))
	assert.Equal(t, "a_b", sanitize("A/B"))
}
