package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

func TestCorrelations(t *testing.T) {
	ds := &entity.Dataset{
		Rows: 4,
		Numeric: map[string][]float64{
			"TotalPremium":        {1, 2, 3, 4},
			"TotalClaims":         {2, 4, 6, 8},
			"CustomValueEstimate": {4, 3, 2, 1},
		},
	}
	columns := []string{"TotalPremium", "TotalClaims", "CustomValueEstimate"}

	matrix, err := Correlations(ds, columns)
	require.NoError(t, err)
	require.NotNil(t, matrix)
	assert.Equal(t, columns, matrix.Columns)
	require.Len(t, matrix.Matrix, 3)

	// Diagonal unitária
	for i := range columns {
		assert.InDelta(t, 1.0, matrix.Matrix[i][i], 1e-12)
	}

	// Perfeitamente correlacionadas e anticorrelacionadas
	assert.InDelta(t, 1.0, matrix.Matrix[0][1], 1e-9)
	assert.InDelta(t, -1.0, matrix.Matrix[0][2], 1e-9)

	// Simetria
	for i := range columns {
		for j := range columns {
			assert.InDelta(t, matrix.Matrix[i][j], matrix.Matrix[j][i], 1e-12)
		}
	}
}

func TestCorrelationsZeroVarianceColumn(t *testing.T) {
	ds := &entity.Dataset{
		Rows: 4,
		Numeric: map[string][]float64{
			"TotalPremium": {1, 2, 3, 4},
			"SumInsured":   {7, 7, 7, 7},
		},
	}
	columns := []string{"TotalPremium", "SumInsured"}

	matrix, err := Correlations(ds, columns)
	require.NoError(t, err)

	// Coluna constante produz NaN fora da diagonal
	assert.True(t, math.IsNaN(matrix.Matrix[0][1]))
	assert.True(t, math.IsNaN(matrix.Matrix[1][0]))

	// A diagonal continua unitária
	assert.InDelta(t, 1.0, matrix.Matrix[0][0], 1e-12)
	assert.InDelta(t, 1.0, matrix.Matrix[1][1], 1e-12)
}

func TestCorrelationsMissingColumn(t *testing.T) {
	ds := &entity.Dataset{
		Numeric: map[string][]float64{"TotalPremium": {1, 2}},
	}

	_, err := Correlations(ds, []string{"TotalPremium", "SumInsured"})
	assert.Error(t, err)
}
