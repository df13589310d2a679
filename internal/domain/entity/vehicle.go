package entity

// VehicleClaims is the claims breakdown for a vehicle make/model pair.
type VehicleClaims struct {
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Policies     int      `json:"policies"`
	TotalClaims  float64  `json:"total_claims"`
	MeanClaims   float64  `json:"mean_claims"`
	TotalPremium float64  `json:"total_premium"`
	LossRatio    *float64 `json:"loss_ratio,omitempty"`
}
