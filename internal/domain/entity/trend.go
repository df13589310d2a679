package entity

// MonthlyTrend is the aggregate of a value column over one calendar month
// (YYYY-MM). PercentChange is the month-over-month change of the sum and is
// nil for the first month or when the previous month's sum is zero.
type MonthlyTrend struct {
	Month         string   `json:"month"`
	Sum           float64  `json:"sum"`
	Mean          float64  `json:"mean"`
	Count         int      `json:"count"`
	PercentChange *float64 `json:"percent_change,omitempty"`
}
