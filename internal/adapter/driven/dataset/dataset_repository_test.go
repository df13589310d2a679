package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
	"github.com/insurlytics/insurance-eda-go/internal/shared/types"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const fixtureCSV = `Province,Gender,TransactionMonth,TotalPremium,TotalClaims
Gauteng,Male,2015-01-01,100,50
Gauteng,Female,2015-01-15,200,NaN
Western Cape,,2015-02-01,300,90
Free State,Male,not-a-date,100,20
`

func loadOptions(path string) entity.LoadOptions {
	return entity.LoadOptions{
		Path:           path,
		Delimiter:      ',',
		DateColumn:     "TransactionMonth",
		PremiumColumn:  "TotalPremium",
		ClaimsColumn:   "TotalClaims",
		NumericColumns: []string{"TotalPremium", "TotalClaims"},
	}
}

func TestLoad(t *testing.T) {
	repo := NewDatasetRepository()
	path := writeFixture(t, fixtureCSV)

	ds, err := repo.Load(context.Background(), loadOptions(path))
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Rows)
	assert.ElementsMatch(t, []string{"Province", "Gender", "TransactionMonth", "TotalPremium", "TotalClaims"}, ds.Columns)

	premium := ds.NumericColumn("TotalPremium")
	require.Len(t, premium, 4)
	assert.InDelta(t, 100.0, premium[0], 1e-9)

	// O sinistro ausente é imputado com a média da coluna: (50+90+20)/3
	claims := ds.NumericColumn("TotalClaims")
	require.Len(t, claims, 4)
	assert.InDelta(t, 160.0/3.0, claims[1], 1e-9)
	assert.Equal(t, 1, ds.Missing["TotalClaims"])
}

func TestLoadParsesDates(t *testing.T) {
	repo := NewDatasetRepository()
	path := writeFixture(t, fixtureCSV)

	ds, err := repo.Load(context.Background(), loadOptions(path))
	require.NoError(t, err)

	require.Len(t, ds.Dates, 4)
	assert.Equal(t, 2015, ds.Dates[0].Year())
	assert.Equal(t, 1, int(ds.Dates[0].Month()))
	assert.Equal(t, 2, int(ds.Dates[2].Month()))

	// Data não reconhecida fica com o tempo zero, a linha não é descartada
	assert.True(t, ds.Dates[3].IsZero())
	assert.Equal(t, 1, ds.Missing["TransactionMonth"])
}

func TestLoadNormalizesMissingCategories(t *testing.T) {
	repo := NewDatasetRepository()
	path := writeFixture(t, fixtureCSV)

	ds, err := repo.Load(context.Background(), loadOptions(path))
	require.NoError(t, err)

	gender := ds.CategoricalColumn("Gender")
	require.Len(t, gender, 4)
	assert.Equal(t, "Male", gender[0])
	assert.Equal(t, "", gender[2])
	assert.Equal(t, 1, ds.Missing["Gender"])
}

func TestLoadMissingFile(t *testing.T) {
	repo := NewDatasetRepository()

	_, err := repo.Load(context.Background(), loadOptions(filepath.Join(t.TempDir(), "nope.csv")))
	assert.Error(t, err)
}

func TestLoadNoPath(t *testing.T) {
	repo := NewDatasetRepository()

	_, err := repo.Load(context.Background(), entity.LoadOptions{})
	assert.ErrorIs(t, err, types.ErrNoDatasetFile)
}

func TestLoadEmptyFile(t *testing.T) {
	repo := NewDatasetRepository()
	path := writeFixture(t, "")

	_, err := repo.Load(context.Background(), loadOptions(path))
	assert.Error(t, err)
}

func TestLoadHeaderOnlyFile(t *testing.T) {
	repo := NewDatasetRepository()
	path := writeFixture(t, "Province,Gender,TransactionMonth,TotalPremium,TotalClaims\n")

	_, err := repo.Load(context.Background(), loadOptions(path))
	assert.ErrorIs(t, err, types.ErrEmptyDataset)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	repo := NewDatasetRepository()
	path := writeFixture(t, "Province,Gender\nGauteng,Male\n")

	_, err := repo.Load(context.Background(), loadOptions(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TotalPremium")
}

func TestLoadCustomDelimiter(t *testing.T) {
	repo := NewDatasetRepository()
	path := writeFixture(t, "Province;TotalPremium;TotalClaims\nGauteng;100;50\n")

	opts := loadOptions(path)
	opts.Delimiter = ';'
	opts.DateColumn = ""

	ds, err := repo.Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Rows)
	assert.InDelta(t, 50.0, ds.NumericColumn("TotalClaims")[0], 1e-9)
}

func TestSummarize(t *testing.T) {
	repo := NewDatasetRepository()
	path := writeFixture(t, fixtureCSV)

	ds, err := repo.Load(context.Background(), loadOptions(path))
	require.NoError(t, err)

	summary := repo.Summarize(ds)

	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, 5, summary.Columns)
	assert.Equal(t, 1, summary.UnparseableDates)

	require.Len(t, summary.NumericSummary, 2)
	// Ordem estável por nome de coluna
	assert.Equal(t, "TotalClaims", summary.NumericSummary[0].Column)
	assert.Equal(t, "TotalPremium", summary.NumericSummary[1].Column)

	premium := summary.NumericSummary[1]
	assert.Equal(t, 4, premium.Count)
	assert.InDelta(t, 175.0, premium.Mean, 1e-9)
	assert.InDelta(t, 100.0, premium.Min, 1e-9)
	assert.InDelta(t, 300.0, premium.Max, 1e-9)

	top := summary.CategoricalTopN["Province"]
	require.NotEmpty(t, top)
	assert.Equal(t, "Gauteng", top[0].Value)
	assert.Equal(t, 2, top[0].Count)
}
