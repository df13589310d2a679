package main

import (
	"fmt"
	"os"

	"github.com/insurlytics/insurance-eda-go/internal/adapter/driven/chart"
	"github.com/insurlytics/insurance-eda-go/internal/adapter/driven/config"
	"github.com/insurlytics/insurance-eda-go/internal/adapter/driven/dataset"
	"github.com/insurlytics/insurance-eda-go/internal/adapter/driven/export"
	"github.com/insurlytics/insurance-eda-go/internal/adapter/driving/cli"
	"github.com/insurlytics/insurance-eda-go/internal/application/usecase"
	"github.com/insurlytics/insurance-eda-go/pkg/console"
	"github.com/insurlytics/insurance-eda-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	datasetRepo := dataset.NewDatasetRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	chartRepo := chart.NewChartRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	analysisUseCase := usecase.NewAnalysisUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		chartRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetAnalysisUseCase(analysisUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
