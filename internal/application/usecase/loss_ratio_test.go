package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

func testDataset() *entity.Dataset {
	return &entity.Dataset{
		SourceFile: "policies.csv",
		Rows:       6,
		Columns:    []string{"Province", "TotalPremium", "TotalClaims"},
		Numeric: map[string][]float64{
			"TotalPremium": {100, 200, 300, 0, 0, 400},
			"TotalClaims":  {50, 150, 90, 10, 0, 200},
		},
		Categorical: map[string][]string{
			"Province": {"Gauteng", "Gauteng", "Western Cape", "Free State", "Free State", ""},
		},
	}
}

func TestLossRatio(t *testing.T) {
	tests := []struct {
		name    string
		claims  float64
		premium float64
		want    *float64
	}{
		{name: "regular ratio", claims: 50, premium: 100, want: floatPtr(0.5)},
		{name: "zero premium is undefined", claims: 50, premium: 0, want: nil},
		{name: "zero claims", claims: 0, premium: 100, want: floatPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LossRatio(tt.claims, tt.premium)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-12)
		})
	}
}

func TestOverallLossRatio(t *testing.T) {
	ds := testDataset()

	row, err := OverallLossRatio(ds, "TotalPremium", "TotalClaims")
	require.NoError(t, err)

	assert.Equal(t, 6, row.Policies)
	assert.InDelta(t, 1000.0, row.TotalPremium, 1e-9)
	assert.InDelta(t, 500.0, row.TotalClaims, 1e-9)
	require.NotNil(t, row.LossRatio)
	assert.InDelta(t, 0.5, *row.LossRatio, 1e-9)
}

func TestOverallLossRatioMissingColumn(t *testing.T) {
	ds := testDataset()

	_, err := OverallLossRatio(ds, "Premium", "TotalClaims")
	assert.Error(t, err)
}

func TestLossRatioByColumn(t *testing.T) {
	ds := testDataset()

	segment, err := LossRatioByColumn(ds, "Province", "TotalPremium", "TotalClaims")
	require.NoError(t, err)
	assert.Equal(t, "Province", segment.Column)
	require.Len(t, segment.Rows, 4)

	byGroup := make(map[string]entity.LossRatioRow)
	for _, row := range segment.Rows {
		byGroup[row.Group] = row
	}

	// Gauteng: (50+150)/(100+200)
	gauteng := byGroup["Gauteng"]
	assert.Equal(t, 2, gauteng.Policies)
	require.NotNil(t, gauteng.LossRatio)
	assert.InDelta(t, 200.0/300.0, *gauteng.LossRatio, 1e-9)

	// Free State has zero premium: the ratio is undefined, not Inf
	freeState := byGroup["Free State"]
	assert.Equal(t, 2, freeState.Policies)
	assert.Nil(t, freeState.LossRatio)

	// A linha sem província cai no grupo de ausentes
	missing, ok := byGroup["(missing)"]
	require.True(t, ok)
	assert.Equal(t, 1, missing.Policies)
}

func TestLossRatioByColumnPartitionsInput(t *testing.T) {
	ds := testDataset()

	segment, err := LossRatioByColumn(ds, "Province", "TotalPremium", "TotalClaims")
	require.NoError(t, err)

	totalPolicies := 0
	totalPremium := 0.0
	totalClaims := 0.0
	for _, row := range segment.Rows {
		totalPolicies += row.Policies
		totalPremium += row.TotalPremium
		totalClaims += row.TotalClaims
	}

	// Cada linha do dataset contribui para exatamente um grupo
	assert.Equal(t, ds.Rows, totalPolicies)
	assert.InDelta(t, 1000.0, totalPremium, 1e-9)
	assert.InDelta(t, 500.0, totalClaims, 1e-9)
}

func TestLossRatioByColumnDeterministic(t *testing.T) {
	ds := testDataset()

	first, err := LossRatioByColumn(ds, "Province", "TotalPremium", "TotalClaims")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := LossRatioByColumn(ds, "Province", "TotalPremium", "TotalClaims")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// Indefinidos ordenam por último
	last := first.Rows[len(first.Rows)-1]
	assert.Nil(t, last.LossRatio)
}

func TestLossRatioByColumnUnknownColumn(t *testing.T) {
	ds := testDataset()

	_, err := LossRatioByColumn(ds, "Suburb", "TotalPremium", "TotalClaims")
	assert.Error(t, err)
}

func floatPtr(v float64) *float64 {
	return &v
}
