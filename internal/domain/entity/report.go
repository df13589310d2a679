package entity

import "time"

// AnalysisReport aggregates every analysis computed in a run. Optional
// sections are empty/nil when the corresponding analysis was not requested.
type AnalysisReport struct {
	SourceFile    string              `json:"source_file"`
	GeneratedAt   time.Time           `json:"generated_at"`
	Summary       DatasetSummary      `json:"summary"`
	Overall       LossRatioRow        `json:"overall_loss_ratio"`
	Segments      []LossRatioSegment  `json:"segments"`
	Distributions []DistributionStats `json:"distributions"`
	Outliers      []OutlierReport     `json:"outliers,omitempty"`
	Trend         []MonthlyTrend      `json:"trend,omitempty"`
	Correlation   *CorrelationMatrix  `json:"correlation,omitempty"`
	VehicleClaims []VehicleClaims     `json:"vehicle_claims,omitempty"`
}
