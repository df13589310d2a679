package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
	"github.com/insurlytics/insurance-eda-go/internal/shared/types"
)

func TestBoxGroups(t *testing.T) {
	ds := &entity.Dataset{
		Rows: 6,
		Numeric: map[string][]float64{
			"TotalClaims": {10, 20, 30, 40, 50, 60},
		},
		Categorical: map[string][]string{
			"Province": {"Gauteng", "Gauteng", "Gauteng", "Western Cape", "Western Cape", ""},
		},
	}

	groups := BoxGroups(ds, "Province", "TotalClaims", 12)
	require.Len(t, groups, 3)

	// Maiores grupos primeiro
	assert.Equal(t, "Gauteng", groups[0].Label)
	assert.Equal(t, []float64{10, 20, 30}, groups[0].Values)
	assert.Equal(t, "Western Cape", groups[1].Label)
	assert.Equal(t, "(missing)", groups[2].Label)
}

func TestBoxGroupsLimit(t *testing.T) {
	ds := &entity.Dataset{
		Rows: 4,
		Numeric: map[string][]float64{
			"TotalClaims": {1, 2, 3, 4},
		},
		Categorical: map[string][]string{
			"Province": {"A", "B", "C", "D"},
		},
	}

	groups := BoxGroups(ds, "Province", "TotalClaims", 2)
	assert.Len(t, groups, 2)
}

func TestBoxGroupsUnknownColumns(t *testing.T) {
	ds := &entity.Dataset{}

	assert.Nil(t, BoxGroups(ds, "Province", "TotalClaims", 5))
}

func TestMergeConfig(t *testing.T) {
	args := &types.CLIArgs{
		File:    "from_flag.csv",
		GroupBy: []string{"Gender"},
	}
	cfg := &types.Config{
		File:          "from_config.csv",
		Delimiter:     "|",
		GroupBy:       []string{"Province"},
		ReportName:    "report",
		ReportType:    []string{"json"},
		Charts:        true,
		OutlierMethod: entity.OutlierMethodZScore,
	}

	mergeConfig(args, cfg)

	// Flags informadas têm precedência sobre o arquivo
	assert.Equal(t, "from_flag.csv", args.File)
	assert.Equal(t, []string{"Gender"}, args.GroupBy)

	// Campos vazios vêm do arquivo
	assert.Equal(t, "|", args.Delimiter)
	assert.Equal(t, "report", args.ReportName)
	assert.Equal(t, []string{"json"}, args.ReportType)
	assert.True(t, args.Charts)
	assert.Equal(t, entity.OutlierMethodZScore, args.OutlierMethod)
}

func TestApplyDefaults(t *testing.T) {
	args := &types.CLIArgs{}

	applyDefaults(args)

	assert.Equal(t, ",", args.Delimiter)
	assert.Equal(t, []string{"Province", "VehicleType", "Gender"}, args.GroupBy)
	assert.Equal(t, []string{"TotalPremium", "TotalClaims", "CustomValueEstimate"}, args.Columns)
	assert.Equal(t, "TransactionMonth", args.DateColumn)
	assert.Equal(t, "TotalPremium", args.PremiumColumn)
	assert.Equal(t, "TotalClaims", args.ClaimsColumn)
	assert.Equal(t, entity.OutlierMethodIQR, args.OutlierMethod)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	args := &types.CLIArgs{
		Delimiter:     ";",
		DateColumn:    "Date",
		OutlierMethod: entity.OutlierMethodZScore,
	}

	applyDefaults(args)

	assert.Equal(t, ";", args.Delimiter)
	assert.Equal(t, "Date", args.DateColumn)
	assert.Equal(t, entity.OutlierMethodZScore, args.OutlierMethod)
}

func TestBuildLoadOptions(t *testing.T) {
	args := &types.CLIArgs{
		File:          "policies.csv",
		Delimiter:     ";",
		Columns:       []string{"TotalPremium", "TotalClaims"},
		DateColumn:    "TransactionMonth",
		PremiumColumn: "TotalPremium",
		ClaimsColumn:  "TotalClaims",
	}

	opts := buildLoadOptions(args)

	assert.Equal(t, "policies.csv", opts.Path)
	assert.Equal(t, ';', opts.Delimiter)
	assert.Equal(t, "TransactionMonth", opts.DateColumn)
	assert.Equal(t, []string{"TotalPremium", "TotalClaims"}, opts.NumericColumns)
}

// quietConsole descarta toda a saída, para testes do caso de uso.
type quietConsole struct{}

func (quietConsole) Print(a ...interface{})                     {}
func (quietConsole) Printf(format string, a ...interface{})     {}
func (quietConsole) Println(a ...interface{})                   {}
func (quietConsole) LogInfo(format string, a ...interface{})    {}
func (quietConsole) LogWarning(format string, a ...interface{}) {}
func (quietConsole) LogError(format string, a ...interface{})   {}
func (quietConsole) LogSuccess(format string, a ...interface{}) {}

func (quietConsole) Status(message string) types.StatusHandle { return quietHandle{} }
func (quietConsole) ProgressWithTotal(total int) types.ProgressHandle {
	return quietHandle{}
}
func (quietConsole) CreateTable() types.TableInterface            { return &quietTable{} }
func (quietConsole) DisplayTrendBars(months []types.MonthlyValue) {}

type quietHandle struct{}

func (quietHandle) Update(message string) {}
func (quietHandle) Increment()            {}
func (quietHandle) Stop()                 {}

type quietTable struct{}

func (*quietTable) AddColumn(name string, options ...interface{}) {}
func (*quietTable) AddRow(cells ...interface{})                   {}
func (*quietTable) Render() string                                { return "" }

func datasetWithoutDateColumn() *entity.Dataset {
	return &entity.Dataset{
		SourceFile: "policies.csv",
		Rows:       2,
		Columns:    []string{"Province", "TotalPremium", "TotalClaims"},
		Numeric: map[string][]float64{
			"TotalPremium": {100, 200},
			"TotalClaims":  {50, 150},
		},
		Categorical: map[string][]string{
			"Province": {"Gauteng", "Gauteng"},
		},
	}
}

func TestBuildReportMissingDateColumn(t *testing.T) {
	uc := NewAnalysisUseCase(nil, nil, nil, nil, quietConsole{})
	ds := datasetWithoutDateColumn()
	args := &types.CLIArgs{}
	applyDefaults(args)

	_, err := uc.buildReport(ds, entity.DatasetSummary{}, args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `date column "TransactionMonth" not found`)
}

func TestRunTrendAnalysisMissingDateColumn(t *testing.T) {
	uc := NewAnalysisUseCase(nil, nil, nil, nil, quietConsole{})
	ds := datasetWithoutDateColumn()
	args := &types.CLIArgs{}
	applyDefaults(args)

	err := uc.runTrendAnalysis(ds, args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `date column "TransactionMonth" not found`)
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "N/A", formatRatio(nil))
	assert.Equal(t, "0.5000", formatRatio(floatPtr(0.5)))
}
