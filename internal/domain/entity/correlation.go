package entity

// CorrelationMatrix is the Pearson correlation matrix over a set of numeric
// columns. Matrix[i][j] is the correlation between Columns[i] and
// Columns[j]; the matrix is symmetric with a unit diagonal. Entries
// involving a zero-variance column are NaN.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Matrix  [][]float64 `json:"matrix"`
}
