package entity

// LoadOptions controls how the loader reads and cleans the dataset file.
type LoadOptions struct {
	Path          string
	Delimiter     rune
	DateColumn    string
	PremiumColumn string
	ClaimsColumn  string
	// NumericColumns are extracted as float64 and imputed; every other
	// column is kept categorical.
	NumericColumns []string
	// CategoricalColumns limits which string columns are materialized.
	// Empty means all non-numeric columns.
	CategoricalColumns []string
}
