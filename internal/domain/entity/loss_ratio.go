package entity

// LossRatioRow is one aggregate row: a group key and the loss ratio computed
// as sum(claims) / sum(premium) over the rows of that group. LossRatio is
// nil when the premium sum is zero, in which case the ratio is reported as
// undefined rather than dividing by zero.
type LossRatioRow struct {
	Group        string   `json:"group"`
	Policies     int      `json:"policies"`
	TotalPremium float64  `json:"total_premium"`
	TotalClaims  float64  `json:"total_claims"`
	LossRatio    *float64 `json:"loss_ratio,omitempty"`
}

// LossRatioSegment holds the loss-ratio breakdown for a single categorical
// column, one row per distinct value.
type LossRatioSegment struct {
	Column string         `json:"column"`
	Rows   []LossRatioRow `json:"rows"`
}
