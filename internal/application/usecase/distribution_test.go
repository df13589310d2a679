package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDistribution(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	stats := AnalyzeDistribution("TotalClaims", values)

	assert.Equal(t, "TotalClaims", stats.Column)
	assert.Equal(t, 5, stats.Count)
	assert.InDelta(t, 3.0, stats.Mean, 1e-9)
	assert.InDelta(t, 1.0, stats.Min, 1e-9)
	assert.InDelta(t, 5.0, stats.Max, 1e-9)
	assert.InDelta(t, 3.0, stats.Median, 1e-9)
	assert.InDelta(t, 2.0, stats.Q1, 1e-9)
	assert.InDelta(t, 4.0, stats.Q3, 1e-9)
	assert.InDelta(t, 0.0, stats.Skewness, 1e-9, "symmetric data has zero skew")
}

func TestAnalyzeDistributionEmpty(t *testing.T) {
	stats := AnalyzeDistribution("TotalClaims", nil)

	assert.Equal(t, 0, stats.Count)
	assert.Zero(t, stats.Mean)
}

func TestAnalyzeDistributionDoesNotMutateInput(t *testing.T) {
	values := []float64{5, 1, 3}

	AnalyzeDistribution("TotalPremium", values)

	assert.Equal(t, []float64{5, 1, 3}, values)
}
