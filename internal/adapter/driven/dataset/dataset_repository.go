package dataset

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
	"github.com/insurlytics/insurance-eda-go/internal/domain/repository"
	"github.com/insurlytics/insurance-eda-go/internal/shared/types"
)

// DatasetRepositoryImpl implementa o DatasetRepository sobre arquivos CSV.
type DatasetRepositoryImpl struct{}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
func NewDatasetRepository() repository.DatasetRepository {
	return &DatasetRepositoryImpl{}
}

// Layouts de data aceitos para a coluna de transação.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01",
}

// Load reads the dataset file into memory, coerces the requested numeric
// columns, imputes missing numeric values with the column mean and parses
// the date column. Rows are never dropped: a row with an unparseable date
// keeps a zero time.
func (r *DatasetRepositoryImpl) Load(ctx context.Context, opts entity.LoadOptions) (*entity.Dataset, error) {
	if opts.Path == "" {
		return nil, types.ErrNoDatasetFile
	}

	file, err := os.Open(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset file: %w", err)
	}
	defer file.Close()

	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}

	// Carrega o arquivo em um dataframe, detectando tipos por coluna
	df := dataframe.ReadCSV(file,
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("error parsing dataset file: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return nil, types.ErrEmptyDataset
	}

	columns := df.Names()

	// Verifica as colunas obrigatórias de prêmio e sinistro
	for _, required := range []string{opts.PremiumColumn, opts.ClaimsColumn} {
		if required != "" && !containsColumn(columns, required) {
			return nil, fmt.Errorf("required column %q not found in dataset", required)
		}
	}

	numericSet := make(map[string]bool)
	for _, c := range opts.NumericColumns {
		numericSet[c] = true
	}
	if opts.PremiumColumn != "" {
		numericSet[opts.PremiumColumn] = true
	}
	if opts.ClaimsColumn != "" {
		numericSet[opts.ClaimsColumn] = true
	}

	categoricalSet := make(map[string]bool)
	for _, c := range opts.CategoricalColumns {
		categoricalSet[c] = true
	}

	ds := &entity.Dataset{
		SourceFile:  opts.Path,
		Rows:        df.Nrow(),
		Columns:     columns,
		Numeric:     make(map[string][]float64),
		Categorical: make(map[string][]string),
		DateColumn:  opts.DateColumn,
		Missing:     make(map[string]int),
	}

	for _, name := range columns {
		switch {
		case numericSet[name]:
			// Extrai como float; valores ausentes viram NaN e são imputados
			values := df.Col(name).Float()
			imputed, missing := imputeMean(values)
			ds.Numeric[name] = imputed
			ds.Missing[name] = missing
		case name == opts.DateColumn:
			records := df.Col(name).Records()
			dates, missing := parseDates(records)
			ds.Dates = dates
			ds.Missing[name] = missing
		case len(categoricalSet) == 0 || categoricalSet[name]:
			records := df.Col(name).Records()
			missing := 0
			for i, v := range records {
				if isMissingString(v) {
					records[i] = ""
					missing++
				}
			}
			ds.Categorical[name] = records
			ds.Missing[name] = missing
		}
	}

	return ds, nil
}

// Summarize computes the describe-style summary of a loaded dataset.
func (r *DatasetRepositoryImpl) Summarize(ds *entity.Dataset) entity.DatasetSummary {
	summary := entity.DatasetSummary{
		SourceFile:      ds.SourceFile,
		Rows:            ds.Rows,
		Columns:         len(ds.Columns),
		MissingValues:   ds.Missing,
		CategoricalTopN: make(map[string][]entity.CategoryCount),
	}

	// Resumo numérico, em ordem de coluna estável
	numericNames := make([]string, 0, len(ds.Numeric))
	for name := range ds.Numeric {
		numericNames = append(numericNames, name)
	}
	sort.Strings(numericNames)

	for _, name := range numericNames {
		values := ds.Numeric[name]
		if len(values) == 0 {
			continue
		}
		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		summary.NumericSummary = append(summary.NumericSummary, entity.ColumnSummary{
			Column:  name,
			Count:   len(values),
			Mean:    stat.Mean(values, nil),
			StdDev:  stat.StdDev(values, nil),
			Min:     sorted[0],
			Q1:      stat.Quantile(0.25, stat.Empirical, sorted, nil),
			Median:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
			Q3:      stat.Quantile(0.75, stat.Empirical, sorted, nil),
			Max:     sorted[len(sorted)-1],
			Missing: ds.Missing[name],
		})
	}

	for name, records := range ds.Categorical {
		summary.CategoricalTopN[name] = topValueCounts(records, 10)
	}

	for _, d := range ds.Dates {
		if d.IsZero() {
			summary.UnparseableDates++
		}
	}

	return summary
}

// imputeMean substitui NaN pelo valor médio da coluna. Quando a coluna não
// tem nenhum valor válido, preenche com zero.
func imputeMean(values []float64) ([]float64, int) {
	sum := 0.0
	count := 0
	missing := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			missing++
			continue
		}
		sum += v
		count++
	}

	mean := 0.0
	if count > 0 {
		mean = sum / float64(count)
	}

	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = mean
		} else {
			out[i] = v
		}
	}
	return out, missing
}

// parseDates converte os registros de texto em time.Time, tentando cada
// layout aceito. Registros não reconhecidos ficam com o tempo zero.
func parseDates(records []string) ([]time.Time, int) {
	dates := make([]time.Time, len(records))
	missing := 0
	for i, rec := range records {
		rec = strings.TrimSpace(rec)
		if isMissingString(rec) {
			missing++
			continue
		}
		parsed := false
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, rec); err == nil {
				dates[i] = t
				parsed = true
				break
			}
		}
		if !parsed {
			missing++
		}
	}
	return dates, missing
}

// topValueCounts retorna os n valores mais frequentes de uma coluna
// categórica, ignorando ausentes, em ordem determinística.
func topValueCounts(records []string, n int) []entity.CategoryCount {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec == "" {
			continue
		}
		counts[rec]++
	}

	result := make([]entity.CategoryCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, entity.CategoryCount{Value: value, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})

	if len(result) > n {
		result = result[:n]
	}
	return result
}

func containsColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

// isMissingString reports whether a raw cell should be treated as missing.
func isMissingString(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "NaN", "NA", "N/A", "null", "nil":
		return true
	}
	return false
}
