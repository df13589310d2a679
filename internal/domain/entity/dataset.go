package entity

import "time"

// Dataset is the in-memory table of policy records produced by the loader.
// Columns are stored column-wise: numeric columns as float64 slices (already
// imputed), categorical columns as string slices, and the transaction date
// column parsed into time.Time values. All slices share the same row count;
// a zero time marks a row whose date could not be parsed.
type Dataset struct {
	SourceFile  string
	Rows        int
	Columns     []string
	Numeric     map[string][]float64
	Categorical map[string][]string
	Dates       []time.Time
	DateColumn  string
	// Missing counts, per column, the values that were absent or
	// unparseable before imputation.
	Missing map[string]int
}

// NumericColumn returns the values of a numeric column, or nil when the
// column was not loaded as numeric.
func (d *Dataset) NumericColumn(name string) []float64 {
	return d.Numeric[name]
}

// CategoricalColumn returns the values of a categorical column, or nil when
// the column was not loaded as categorical.
func (d *Dataset) CategoricalColumn(name string) []string {
	return d.Categorical[name]
}

// HasColumn reports whether the dataset contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnSummary holds the describe-style statistics of a numeric column.
type ColumnSummary struct {
	Column  string  `json:"column"`
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Max     float64 `json:"max"`
	Missing int     `json:"missing"`
}

// CategoryCount is one value of a categorical column and its frequency.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// DatasetSummary describes the loaded dataset: shape, missing values and
// per-column statistics.
type DatasetSummary struct {
	SourceFile       string                     `json:"source_file"`
	Rows             int                        `json:"rows"`
	Columns          int                        `json:"columns"`
	MissingValues    map[string]int             `json:"missing_values"`
	NumericSummary   []ColumnSummary            `json:"numeric_summary"`
	CategoricalTopN  map[string][]CategoryCount `json:"categorical_top_n"`
	UnparseableDates int                        `json:"unparseable_dates"`
}
