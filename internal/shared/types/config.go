package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	File          string   `json:"file" yaml:"file" toml:"file"`
	Delimiter     string   `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	GroupBy       []string `json:"group_by" yaml:"group_by" toml:"group_by"`
	Columns       []string `json:"columns" yaml:"columns" toml:"columns"`
	DateColumn    string   `json:"date_column" yaml:"date_column" toml:"date_column"`
	PremiumColumn string   `json:"premium_column" yaml:"premium_column" toml:"premium_column"`
	ClaimsColumn  string   `json:"claims_column" yaml:"claims_column" toml:"claims_column"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
	Charts        bool     `json:"charts" yaml:"charts" toml:"charts"`
	ChartsDir     string   `json:"charts_dir" yaml:"charts_dir" toml:"charts_dir"`
	Trend         bool     `json:"trend" yaml:"trend" toml:"trend"`
	Outliers      bool     `json:"outliers" yaml:"outliers" toml:"outliers"`
	OutlierMethod string   `json:"outlier_method" yaml:"outlier_method" toml:"outlier_method"`
	Correlation   bool     `json:"correlation" yaml:"correlation" toml:"correlation"`
	Vehicles      bool     `json:"vehicles" yaml:"vehicles" toml:"vehicles"`
}
