package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
	"github.com/insurlytics/insurance-eda-go/internal/domain/repository"
	"github.com/insurlytics/insurance-eda-go/internal/shared/types"
)

// AnalysisUseCase handles the main analysis workflow: load, analyze,
// display, export and chart.
type AnalysisUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	chartRepo   repository.ChartRepository
	console     types.ConsoleInterface
}

// NewAnalysisUseCase creates a new analysis use case.
func NewAnalysisUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	chartRepo repository.ChartRepository,
	console types.ConsoleInterface,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		chartRepo:   chartRepo,
		console:     console,
	}
}

// RunAnalysis executa a funcionalidade principal da análise.
func (uc *AnalysisUseCase) RunAnalysis(ctx context.Context, args *types.CLIArgs) error {
	// Mescla o arquivo de configuração, se especificado; flags têm precedência
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		mergeConfig(args, cfg)
	}
	applyDefaults(args)

	if args.File == "" {
		return types.ErrNoDatasetFile
	}

	opts := buildLoadOptions(args)

	// Carrega e limpa o dataset
	status := uc.console.Status("Loading dataset...")
	ds, err := uc.datasetRepo.Load(ctx, opts)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Summarizing dataset...")
	summary := uc.datasetRepo.Summarize(ds)
	status.Stop()

	uc.console.LogSuccess("Loaded %d rows x %d columns from %s", ds.Rows, len(ds.Columns), ds.SourceFile)
	if summary.UnparseableDates > 0 {
		uc.console.LogWarning("%d rows have an unparseable %s value and are excluded from the monthly trend", summary.UnparseableDates, args.DateColumn)
	}

	// Modo de tendência: exibe apenas as barras mensais
	if args.Trend {
		return uc.runTrendAnalysis(ds, args)
	}

	report, err := uc.buildReport(ds, summary, args)
	if err != nil {
		return err
	}

	uc.displayReport(report)

	// Exporta os relatórios, se solicitado
	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReport(report, args)
	}

	// Renderiza os gráficos, se solicitado
	if args.Charts {
		uc.renderCharts(ds, report, args)
	}

	return nil
}

// runTrendAnalysis executa a análise de tendência mensal dos sinistros.
func (uc *AnalysisUseCase) runTrendAnalysis(ds *entity.Dataset, args *types.CLIArgs) error {
	uc.console.LogInfo("Analysing monthly claim trends...")

	if !ds.HasColumn(args.DateColumn) {
		return fmt.Errorf("date column %q not found in dataset", args.DateColumn)
	}

	values := ds.NumericColumn(args.ClaimsColumn)
	trend, err := MonthlyTrends(ds.Dates, values)
	if err != nil {
		return err
	}
	if len(trend) == 0 {
		uc.console.LogWarning("No trend data available: no rows with a parseable %s value", args.DateColumn)
		return nil
	}

	// Converte para o tipo de exibição
	months := make([]types.MonthlyValue, len(trend))
	for i, t := range trend {
		months[i] = types.MonthlyValue{Month: t.Month, Value: t.Sum}
	}

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("Monthly %s trend (%s)", args.ClaimsColumn, ds.SourceFile))
	uc.console.DisplayTrendBars(months)
	return nil
}

// buildReport computa todas as seções da análise com uma barra de progresso.
func (uc *AnalysisUseCase) buildReport(ds *entity.Dataset, summary entity.DatasetSummary, args *types.CLIArgs) (*entity.AnalysisReport, error) {
	report := &entity.AnalysisReport{
		SourceFile:  ds.SourceFile,
		GeneratedAt: time.Now(),
		Summary:     summary,
	}

	progressTotal := 2 + len(args.GroupBy) + len(args.Columns)
	if args.Outliers {
		progressTotal += len(args.Columns)
	}
	if args.Correlation {
		progressTotal++
	}
	if args.Vehicles {
		progressTotal++
	}
	progress := uc.console.ProgressWithTotal(progressTotal)
	defer progress.Stop()

	// Loss ratio geral
	overall, err := OverallLossRatio(ds, args.PremiumColumn, args.ClaimsColumn)
	if err != nil {
		return nil, err
	}
	report.Overall = overall
	progress.Increment()

	// Loss ratio por coluna categórica
	for _, column := range args.GroupBy {
		segment, err := LossRatioByColumn(ds, column, args.PremiumColumn, args.ClaimsColumn)
		if err != nil {
			uc.console.LogWarning("Skipping group-by column: %s", err)
			progress.Increment()
			continue
		}
		report.Segments = append(report.Segments, segment)
		progress.Increment()
	}

	// Distribuições das colunas numéricas
	for _, column := range args.Columns {
		values := ds.NumericColumn(column)
		if values == nil {
			uc.console.LogWarning("Numeric column '%s' not found in dataset", column)
			progress.Increment()
			continue
		}
		report.Distributions = append(report.Distributions, AnalyzeDistribution(column, values))
		progress.Increment()
	}

	// Outliers
	if args.Outliers {
		for _, column := range args.Columns {
			values := ds.NumericColumn(column)
			if values == nil {
				progress.Increment()
				continue
			}
			outliers, err := DetectOutliers(column, values, args.OutlierMethod)
			if err != nil {
				return nil, err
			}
			report.Outliers = append(report.Outliers, outliers)
			progress.Increment()
		}
	}

	// Tendência mensal dos sinistros (sempre computada para o relatório)
	if !ds.HasColumn(args.DateColumn) {
		return nil, fmt.Errorf("date column %q not found in dataset", args.DateColumn)
	}
	trend, err := MonthlyTrends(ds.Dates, ds.NumericColumn(args.ClaimsColumn))
	if err != nil {
		return nil, err
	}
	report.Trend = trend
	progress.Increment()

	// Matriz de correlação
	if args.Correlation {
		correlation, err := Correlations(ds, args.Columns)
		if err != nil {
			uc.console.LogWarning("Skipping correlation matrix: %s", err)
		} else {
			report.Correlation = correlation
		}
		progress.Increment()
	}

	// Quebra por veículo
	if args.Vehicles {
		vehicles, err := VehicleClaimsBreakdown(ds, args.PremiumColumn, args.ClaimsColumn)
		if err != nil {
			uc.console.LogWarning("Skipping vehicle breakdown: %s", err)
		} else {
			report.VehicleClaims = vehicles
		}
		progress.Increment()
	}

	return report, nil
}

// displayReport exibe as tabelas da análise no console.
func (uc *AnalysisUseCase) displayReport(report *entity.AnalysisReport) {
	// Resumo do dataset
	summaryTable := uc.console.CreateTable()
	summaryTable.AddColumn("Column")
	summaryTable.AddColumn("Count")
	summaryTable.AddColumn("Mean")
	summaryTable.AddColumn("Std Dev")
	summaryTable.AddColumn("Min")
	summaryTable.AddColumn("Q1")
	summaryTable.AddColumn("Median")
	summaryTable.AddColumn("Q3")
	summaryTable.AddColumn("Max")
	summaryTable.AddColumn("Missing")
	for _, cs := range report.Summary.NumericSummary {
		summaryTable.AddRow(
			pterm.FgCyan.Sprint(cs.Column),
			fmt.Sprintf("%d", cs.Count),
			fmt.Sprintf("%.2f", cs.Mean),
			fmt.Sprintf("%.2f", cs.StdDev),
			fmt.Sprintf("%.2f", cs.Min),
			fmt.Sprintf("%.2f", cs.Q1),
			fmt.Sprintf("%.2f", cs.Median),
			fmt.Sprintf("%.2f", cs.Q3),
			fmt.Sprintf("%.2f", cs.Max),
			fmt.Sprintf("%d", cs.Missing),
		)
	}
	uc.console.Println()
	uc.console.LogInfo("Dataset summary")
	uc.console.Print(summaryTable.Render())

	// Loss ratio geral
	uc.console.Println()
	uc.console.LogInfo("Overall loss ratio: %s (claims %.2f / premium %.2f over %d policies)",
		formatRatio(report.Overall.LossRatio), report.Overall.TotalClaims, report.Overall.TotalPremium, report.Overall.Policies)

	// Segmentos
	for _, segment := range report.Segments {
		table := uc.console.CreateTable()
		table.AddColumn(segment.Column)
		table.AddColumn("Policies")
		table.AddColumn("Total Premium")
		table.AddColumn("Total Claims")
		table.AddColumn("Loss Ratio")
		for _, row := range segment.Rows {
			table.AddRow(
				pterm.FgMagenta.Sprint(row.Group),
				fmt.Sprintf("%d", row.Policies),
				fmt.Sprintf("%.2f", row.TotalPremium),
				fmt.Sprintf("%.2f", row.TotalClaims),
				colorRatio(row.LossRatio),
			)
		}
		uc.console.Println()
		uc.console.LogInfo("Loss ratio by %s", segment.Column)
		uc.console.Print(table.Render())
	}

	// Distribuições
	if len(report.Distributions) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Column")
		table.AddColumn("Mean")
		table.AddColumn("Std Dev")
		table.AddColumn("Skewness")
		table.AddColumn("Kurtosis")
		for _, d := range report.Distributions {
			table.AddRow(
				pterm.FgCyan.Sprint(d.Column),
				fmt.Sprintf("%.2f", d.Mean),
				fmt.Sprintf("%.2f", d.StdDev),
				fmt.Sprintf("%.4f", d.Skewness),
				fmt.Sprintf("%.4f", d.Kurtosis),
			)
		}
		uc.console.Println()
		uc.console.LogInfo("Distribution analysis")
		uc.console.Print(table.Render())
	}

	// Outliers
	if len(report.Outliers) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Column")
		table.AddColumn("Method")
		table.AddColumn("Outliers")
		table.AddColumn("Bounds")
		for _, o := range report.Outliers {
			bounds := fmt.Sprintf("|z| > %.0f", o.Threshold)
			if o.Method == entity.OutlierMethodIQR {
				bounds = fmt.Sprintf("[%.2f, %.2f]", o.LowerBound, o.UpperBound)
			}
			count := pterm.FgGreen.Sprintf("%d", o.Count)
			if o.Count > 0 {
				count = pterm.FgYellow.Sprintf("%d", o.Count)
			}
			table.AddRow(pterm.FgCyan.Sprint(o.Column), o.Method, count, bounds)
		}
		uc.console.Println()
		uc.console.LogInfo("Outlier analysis")
		uc.console.Print(table.Render())
	}

	// Correlação
	if report.Correlation != nil {
		table := uc.console.CreateTable()
		table.AddColumn("")
		for _, c := range report.Correlation.Columns {
			table.AddColumn(c)
		}
		for i, c := range report.Correlation.Columns {
			cells := make([]interface{}, 0, len(report.Correlation.Columns)+1)
			cells = append(cells, pterm.FgCyan.Sprint(c))
			for _, v := range report.Correlation.Matrix[i] {
				cells = append(cells, fmt.Sprintf("%.3f", v))
			}
			table.AddRow(cells...)
		}
		uc.console.Println()
		uc.console.LogInfo("Correlation matrix")
		uc.console.Print(table.Render())
	}

	// Veículos (top 10)
	if len(report.VehicleClaims) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Make")
		table.AddColumn("Model")
		table.AddColumn("Policies")
		table.AddColumn("Total Claims")
		table.AddColumn("Mean Claims")
		table.AddColumn("Loss Ratio")
		limit := len(report.VehicleClaims)
		if limit > 10 {
			limit = 10
		}
		for _, vc := range report.VehicleClaims[:limit] {
			table.AddRow(
				pterm.FgMagenta.Sprint(vc.Make),
				vc.Model,
				fmt.Sprintf("%d", vc.Policies),
				fmt.Sprintf("%.2f", vc.TotalClaims),
				fmt.Sprintf("%.2f", vc.MeanClaims),
				colorRatio(vc.LossRatio),
			)
		}
		uc.console.Println()
		uc.console.LogInfo("Claims by vehicle (top %d of %d)", limit, len(report.VehicleClaims))
		uc.console.Print(table.Render())
	}

	// Tendência mensal
	if len(report.Trend) > 0 {
		months := make([]types.MonthlyValue, len(report.Trend))
		for i, t := range report.Trend {
			months[i] = types.MonthlyValue{Month: t.Month, Value: t.Sum}
		}
		uc.console.DisplayTrendBars(months)
	}
}

// exportReport exporta o relatório nos formatos solicitados.
func (uc *AnalysisUseCase) exportReport(report *entity.AnalysisReport, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch strings.ToLower(reportType) {
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", path)
			}
		case "xlsx":
			path, err := uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", path)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (use csv, json, pdf or xlsx)", reportType)
		}
	}
}

// renderCharts renderiza os gráficos estáticos da análise.
func (uc *AnalysisUseCase) renderCharts(ds *entity.Dataset, report *entity.AnalysisReport, args *types.CLIArgs) {
	status := uc.console.Status("Rendering charts...")
	defer status.Stop()

	chartsDir := args.ChartsDir
	if chartsDir == "" {
		chartsDir = args.Dir
	}

	for _, segment := range report.Segments {
		status.Update(fmt.Sprintf("Rendering loss ratio chart for %s...", segment.Column))
		path, err := uc.chartRepo.RenderLossRatioBars(segment, chartsDir)
		if err != nil {
			uc.console.LogError("Failed to render loss ratio chart for %s: %s", segment.Column, err)
			continue
		}
		uc.console.LogSuccess("Chart written: %s", path)
	}

	for _, column := range args.Columns {
		values := ds.NumericColumn(column)
		if values == nil {
			continue
		}
		status.Update(fmt.Sprintf("Rendering histogram for %s...", column))
		path, err := uc.chartRepo.RenderHistogram(column, values, chartsDir)
		if err != nil {
			uc.console.LogError("Failed to render histogram for %s: %s", column, err)
			continue
		}
		uc.console.LogSuccess("Chart written: %s", path)
	}

	if len(report.Trend) > 0 {
		status.Update("Rendering monthly trend chart...")
		path, err := uc.chartRepo.RenderTrendLine(report.Trend, args.ClaimsColumn, chartsDir)
		if err != nil {
			uc.console.LogError("Failed to render trend chart: %s", err)
		} else {
			uc.console.LogSuccess("Chart written: %s", path)
		}
	}

	if report.Correlation != nil {
		status.Update("Rendering correlation heat map...")
		path, err := uc.chartRepo.RenderCorrelationHeatmap(report.Correlation, chartsDir)
		if err != nil {
			uc.console.LogError("Failed to render correlation heat map: %s", err)
		} else {
			uc.console.LogSuccess("Chart written: %s", path)
		}
	}

	// Box plots agrupados pela primeira coluna categórica
	if len(args.GroupBy) > 0 {
		groupColumn := args.GroupBy[0]
		for _, column := range args.Columns {
			groups := BoxGroups(ds, groupColumn, column, 12)
			if len(groups) == 0 {
				continue
			}
			status.Update(fmt.Sprintf("Rendering box plot for %s by %s...", column, groupColumn))
			path, err := uc.chartRepo.RenderBoxPlot(column, groups, chartsDir)
			if err != nil {
				uc.console.LogError("Failed to render box plot for %s: %s", column, err)
				continue
			}
			uc.console.LogSuccess("Chart written: %s", path)
		}
	}
}

// BoxGroups builds the per-category value slices used by the grouped box
// plot, keeping the most frequent categories up to limit, ordered by
// frequency then name.
func BoxGroups(ds *entity.Dataset, groupColumn, valueColumn string, limit int) []entity.BoxGroup {
	categories := ds.CategoricalColumn(groupColumn)
	values := ds.NumericColumn(valueColumn)
	if categories == nil || values == nil {
		return nil
	}

	byCategory := make(map[string][]float64)
	for i, category := range categories {
		if category == "" {
			category = missingGroupLabel
		}
		byCategory[category] = append(byCategory[category], values[i])
	}

	groups := make([]entity.BoxGroup, 0, len(byCategory))
	for label, vals := range byCategory {
		groups = append(groups, entity.BoxGroup{Label: label, Values: vals})
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Values) != len(groups[j].Values) {
			return len(groups[i].Values) > len(groups[j].Values)
		}
		return groups[i].Label < groups[j].Label
	})
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

// mergeConfig preenche os argumentos vazios com os valores do arquivo de
// configuração. Flags informadas pelo usuário têm precedência.
func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.File == "" {
		args.File = cfg.File
	}
	if args.Delimiter == "" {
		args.Delimiter = cfg.Delimiter
	}
	if len(args.GroupBy) == 0 {
		args.GroupBy = cfg.GroupBy
	}
	if len(args.Columns) == 0 {
		args.Columns = cfg.Columns
	}
	if args.DateColumn == "" {
		args.DateColumn = cfg.DateColumn
	}
	if args.PremiumColumn == "" {
		args.PremiumColumn = cfg.PremiumColumn
	}
	if args.ClaimsColumn == "" {
		args.ClaimsColumn = cfg.ClaimsColumn
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.ChartsDir == "" {
		args.ChartsDir = cfg.ChartsDir
	}
	if args.OutlierMethod == "" {
		args.OutlierMethod = cfg.OutlierMethod
	}
	args.Charts = args.Charts || cfg.Charts
	args.Trend = args.Trend || cfg.Trend
	args.Outliers = args.Outliers || cfg.Outliers
	args.Correlation = args.Correlation || cfg.Correlation
	args.Vehicles = args.Vehicles || cfg.Vehicles
}

// applyDefaults aplica os padrões da análise aos argumentos ainda vazios.
func applyDefaults(args *types.CLIArgs) {
	if args.Delimiter == "" {
		args.Delimiter = ","
	}
	if len(args.GroupBy) == 0 {
		args.GroupBy = []string{"Province", "VehicleType", "Gender"}
	}
	if len(args.Columns) == 0 {
		args.Columns = []string{"TotalPremium", "TotalClaims", "CustomValueEstimate"}
	}
	if args.DateColumn == "" {
		args.DateColumn = "TransactionMonth"
	}
	if args.PremiumColumn == "" {
		args.PremiumColumn = "TotalPremium"
	}
	if args.ClaimsColumn == "" {
		args.ClaimsColumn = "TotalClaims"
	}
	if args.OutlierMethod == "" {
		args.OutlierMethod = entity.OutlierMethodIQR
	}
}

// buildLoadOptions converte os argumentos da CLI em opções do loader.
func buildLoadOptions(args *types.CLIArgs) entity.LoadOptions {
	delimiter := ','
	if args.Delimiter != "" {
		delimiter = []rune(args.Delimiter)[0]
	}
	return entity.LoadOptions{
		Path:           args.File,
		Delimiter:      delimiter,
		DateColumn:     args.DateColumn,
		PremiumColumn:  args.PremiumColumn,
		ClaimsColumn:   args.ClaimsColumn,
		NumericColumns: args.Columns,
	}
}

// formatRatio formata um loss ratio possivelmente indefinido.
func formatRatio(ratio *float64) string {
	if ratio == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", *ratio)
}

// colorRatio colore o loss ratio para exibição: indefinido em amarelo,
// acima de 1 (segmento no prejuízo) em vermelho, abaixo em verde.
func colorRatio(ratio *float64) string {
	if ratio == nil {
		return pterm.FgYellow.Sprint("N/A")
	}
	if *ratio >= 1 {
		return pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("%.4f", *ratio)
	}
	return pterm.FgGreen.Sprintf("%.4f", *ratio)
}
