package entity

// Métodos de detecção de outliers suportados.
const (
	OutlierMethodIQR    = "iqr"
	OutlierMethodZScore = "zscore"
)

// OutlierReport lists the row indices of a numeric column flagged as
// outliers by a given method. For the IQR method LowerBound and UpperBound
// carry the fences; for the z-score method Threshold carries the |z| cutoff.
type OutlierReport struct {
	Column     string  `json:"column"`
	Method     string  `json:"method"`
	Indices    []int   `json:"indices"`
	Count      int     `json:"count"`
	LowerBound float64 `json:"lower_bound,omitempty"`
	UpperBound float64 `json:"upper_bound,omitempty"`
	Threshold  float64 `json:"threshold,omitempty"`
}
