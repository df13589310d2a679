package cli

import (
	"context"

	"github.com/insurlytics/insurance-eda-go/pkg/version"

	"github.com/insurlytics/insurance-eda-go/internal/application/usecase"
	"github.com/insurlytics/insurance-eda-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd         *cobra.Command
	analysisUseCase *usecase.AnalysisUseCase
	version         string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "insurance-eda",
		Short:   "Insurance Loss Ratio EDA CLI",
		Version: formattedVersion, // Use a versão formatada
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "Insurance EDA version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the policy dataset CSV file")
	rootCmd.PersistentFlags().String("delimiter", "", "Field delimiter of the CSV file (default ',')")
	rootCmd.PersistentFlags().StringSliceP("group-by", "g", nil, "Categorical columns to segment the loss ratio by (default Province,VehicleType,Gender)")
	rootCmd.PersistentFlags().StringSlice("columns", nil, "Numeric columns to analyze (default TotalPremium,TotalClaims,CustomValueEstimate)")
	rootCmd.PersistentFlags().String("date-column", "", "Date column used for the monthly trend (default TransactionMonth)")
	rootCmd.PersistentFlags().String("premium-column", "", "Premium amount column (default TotalPremium)")
	rootCmd.PersistentFlags().String("claims-column", "", "Claim amount column (default TotalClaims)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, xlsx")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("charts", false, "Render PNG charts alongside the analysis")
	rootCmd.PersistentFlags().String("charts-dir", "", "Directory to save the chart files (default: report directory)")
	rootCmd.PersistentFlags().Bool("trend", false, "Display a monthly claims trend report as bars")
	rootCmd.PersistentFlags().Bool("outliers", false, "Flag outlier values in the numeric columns")
	rootCmd.PersistentFlags().String("outlier-method", "", "Outlier detection method: iqr or zscore (default iqr)")
	rootCmd.PersistentFlags().Bool("correlation", false, "Compute the correlation matrix of the numeric columns")
	rootCmd.PersistentFlags().Bool("vehicles", false, "Show a claims breakdown by vehicle make and model")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
// Defaults are resolved later, after the configuration file is merged.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	file, _ := app.rootCmd.Flags().GetString("file")
	delimiter, _ := app.rootCmd.Flags().GetString("delimiter")
	groupBy, _ := app.rootCmd.Flags().GetStringSlice("group-by")
	columns, _ := app.rootCmd.Flags().GetStringSlice("columns")
	dateColumn, _ := app.rootCmd.Flags().GetString("date-column")
	premiumColumn, _ := app.rootCmd.Flags().GetString("premium-column")
	claimsColumn, _ := app.rootCmd.Flags().GetString("claims-column")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	charts, _ := app.rootCmd.Flags().GetBool("charts")
	chartsDir, _ := app.rootCmd.Flags().GetString("charts-dir")
	trend, _ := app.rootCmd.Flags().GetBool("trend")
	outliers, _ := app.rootCmd.Flags().GetBool("outliers")
	outlierMethod, _ := app.rootCmd.Flags().GetString("outlier-method")
	correlation, _ := app.rootCmd.Flags().GetBool("correlation")
	vehicles, _ := app.rootCmd.Flags().GetBool("vehicles")

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		File:          file,
		Delimiter:     delimiter,
		GroupBy:       groupBy,
		Columns:       columns,
		DateColumn:    dateColumn,
		PremiumColumn: premiumColumn,
		ClaimsColumn:  claimsColumn,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		Charts:        charts,
		ChartsDir:     chartsDir,
		Trend:         trend,
		Outliers:      outliers,
		OutlierMethod: outlierMethod,
		Correlation:   correlation,
		Vehicles:      vehicles,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa a análise
	ctx := context.Background()
	return app.analysisUseCase.RunAnalysis(ctx, cliArgs)
}

// SetAnalysisUseCase sets the analysis use case for the CLI app.
func (app *CLIApp) SetAnalysisUseCase(useCase *usecase.AnalysisUseCase) {
	app.analysisUseCase = useCase
}
