package entity

// DistributionStats holds the distribution analysis of a numeric column.
// Kurtosis is the excess kurtosis (0 for a normal distribution).
type DistributionStats struct {
	Column   string  `json:"column"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}
