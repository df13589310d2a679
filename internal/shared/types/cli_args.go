package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	File          string
	Delimiter     string
	GroupBy       []string
	Columns       []string
	DateColumn    string
	PremiumColumn string
	ClaimsColumn  string
	ReportName    string
	ReportType    []string
	Dir           string
	Charts        bool
	ChartsDir     string
	Trend         bool
	Outliers      bool
	OutlierMethod string
	Correlation   bool
	Vehicles      bool
}
