package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
	"github.com/insurlytics/insurance-eda-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Exportação CSV ---

func (r *ExportRepositoryImpl) ExportToCSV(report *entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	write := func(record ...string) {
		writer.Write(record)
	}

	write("Insurance EDA Report", report.SourceFile, report.GeneratedAt.Format("2006-01-02 15:04:05"))
	write()

	// Loss ratio geral
	write("Overall Loss Ratio")
	write("Policies", "Total Premium", "Total Claims", "Loss Ratio")
	write(
		fmt.Sprintf("%d", report.Overall.Policies),
		fmt.Sprintf("%.2f", report.Overall.TotalPremium),
		fmt.Sprintf("%.2f", report.Overall.TotalClaims),
		ratioString(report.Overall.LossRatio),
	)
	write()

	// Segmentos
	for _, segment := range report.Segments {
		write(fmt.Sprintf("Loss Ratio by %s", segment.Column))
		write(segment.Column, "Policies", "Total Premium", "Total Claims", "Loss Ratio")
		for _, row := range segment.Rows {
			write(
				cleanRichTags(row.Group),
				fmt.Sprintf("%d", row.Policies),
				fmt.Sprintf("%.2f", row.TotalPremium),
				fmt.Sprintf("%.2f", row.TotalClaims),
				ratioString(row.LossRatio),
			)
		}
		write()
	}

	// Distribuições
	if len(report.Distributions) > 0 {
		write("Distributions")
		write("Column", "Count", "Mean", "Std Dev", "Min", "Q1", "Median", "Q3", "Max", "Skewness", "Kurtosis")
		for _, d := range report.Distributions {
			write(
				d.Column,
				fmt.Sprintf("%d", d.Count),
				fmt.Sprintf("%.4f", d.Mean),
				fmt.Sprintf("%.4f", d.StdDev),
				fmt.Sprintf("%.4f", d.Min),
				fmt.Sprintf("%.4f", d.Q1),
				fmt.Sprintf("%.4f", d.Median),
				fmt.Sprintf("%.4f", d.Q3),
				fmt.Sprintf("%.4f", d.Max),
				fmt.Sprintf("%.4f", d.Skewness),
				fmt.Sprintf("%.4f", d.Kurtosis),
			)
		}
		write()
	}

	// Outliers
	if len(report.Outliers) > 0 {
		write("Outliers")
		write("Column", "Method", "Count", "Lower Bound", "Upper Bound", "Threshold")
		for _, o := range report.Outliers {
			write(
				o.Column,
				o.Method,
				fmt.Sprintf("%d", o.Count),
				fmt.Sprintf("%.4f", o.LowerBound),
				fmt.Sprintf("%.4f", o.UpperBound),
				fmt.Sprintf("%.1f", o.Threshold),
			)
		}
		write()
	}

	// Tendência mensal
	if len(report.Trend) > 0 {
		write("Monthly Trend")
		write("Month", "Sum", "Mean", "Count", "MoM Change %")
		for _, t := range report.Trend {
			change := "N/A"
			if t.PercentChange != nil {
				change = fmt.Sprintf("%.2f", *t.PercentChange)
			}
			write(t.Month, fmt.Sprintf("%.2f", t.Sum), fmt.Sprintf("%.2f", t.Mean), fmt.Sprintf("%d", t.Count), change)
		}
		write()
	}

	// Correlação
	if report.Correlation != nil {
		write("Correlation Matrix")
		write(append([]string{""}, report.Correlation.Columns...)...)
		for i, column := range report.Correlation.Columns {
			record := []string{column}
			for _, v := range report.Correlation.Matrix[i] {
				record = append(record, fmt.Sprintf("%.4f", v))
			}
			write(record...)
		}
		write()
	}

	// Veículos
	if len(report.VehicleClaims) > 0 {
		write("Claims by Vehicle")
		write("Make", "Model", "Policies", "Total Claims", "Mean Claims", "Total Premium", "Loss Ratio")
		for _, vc := range report.VehicleClaims {
			write(
				cleanRichTags(vc.Make),
				cleanRichTags(vc.Model),
				fmt.Sprintf("%d", vc.Policies),
				fmt.Sprintf("%.2f", vc.TotalClaims),
				fmt.Sprintf("%.2f", vc.MeanClaims),
				fmt.Sprintf("%.2f", vc.TotalPremium),
				ratioString(vc.LossRatio),
			)
		}
	}

	return filepath.Abs(outputFilename)
}

// --- Exportação JSON ---

func (r *ExportRepositoryImpl) ExportToJSON(report *entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Exportação PDF ---

func (r *ExportRepositoryImpl) ExportToPDF(report *entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		content = cleanRichTags(content)
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	drawHeader := func(title string) {
		pdf.AddPage()
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Dataset: %s", report.SourceFile)), "", 1, "L", true, 0, "")
		pdf.Ln(10)
	}

	drawFooter := func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Insurance EDA Report | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	}

	// Página de visão geral
	drawHeader("Insurance Loss Ratio Analysis")

	var overview strings.Builder
	overview.WriteString(fmt.Sprintf("Rows: %d\nColumns: %d\n", report.Summary.Rows, report.Summary.Columns))
	overview.WriteString(fmt.Sprintf("Overall loss ratio: %s\n", ratioString(report.Overall.LossRatio)))
	overview.WriteString(fmt.Sprintf("Total premium: %.2f\nTotal claims: %.2f\nPolicies: %d",
		report.Overall.TotalPremium, report.Overall.TotalClaims, report.Overall.Policies))
	drawSection("Portfolio Overview", overview.String())

	if len(report.Summary.NumericSummary) > 0 {
		var b strings.Builder
		for _, cs := range report.Summary.NumericSummary {
			b.WriteString(fmt.Sprintf("%s: mean %.2f, std %.2f, min %.2f, median %.2f, max %.2f (%d missing)\n",
				cs.Column, cs.Mean, cs.StdDev, cs.Min, cs.Median, cs.Max, cs.Missing))
		}
		drawSection("Numeric Columns", b.String())
	}

	if len(report.Distributions) > 0 {
		var b strings.Builder
		for _, d := range report.Distributions {
			b.WriteString(fmt.Sprintf("%s: skewness %.4f, kurtosis %.4f, IQR [%.2f, %.2f]\n",
				d.Column, d.Skewness, d.Kurtosis, d.Q1, d.Q3))
		}
		drawSection("Distributions", b.String())
	}
	drawFooter()

	// Uma página por segmento
	for _, segment := range report.Segments {
		drawHeader(fmt.Sprintf("Loss Ratio by %s", segment.Column))
		var b strings.Builder
		for _, row := range segment.Rows {
			b.WriteString(fmt.Sprintf("%s: %s (claims %.2f / premium %.2f, %d policies)\n",
				row.Group, ratioString(row.LossRatio), row.TotalClaims, row.TotalPremium, row.Policies))
		}
		drawSection("Segments", b.String())
		drawFooter()
	}

	// Página com as demais seções, quando presentes
	if len(report.Outliers) > 0 || len(report.Trend) > 0 || report.Correlation != nil || len(report.VehicleClaims) > 0 {
		drawHeader("Detailed Analysis")

		if len(report.Outliers) > 0 {
			var b strings.Builder
			for _, o := range report.Outliers {
				if o.Method == entity.OutlierMethodIQR {
					b.WriteString(fmt.Sprintf("%s (%s): %d outliers outside [%.2f, %.2f]\n",
						o.Column, o.Method, o.Count, o.LowerBound, o.UpperBound))
				} else {
					b.WriteString(fmt.Sprintf("%s (%s): %d outliers with |z| > %.0f\n",
						o.Column, o.Method, o.Count, o.Threshold))
				}
			}
			drawSection("Outliers", b.String())
		}

		if len(report.Trend) > 0 {
			var b strings.Builder
			for _, t := range report.Trend {
				change := "N/A"
				if t.PercentChange != nil {
					change = fmt.Sprintf("%+.2f%%", *t.PercentChange)
				}
				b.WriteString(fmt.Sprintf("%s: sum %.2f, mean %.2f, count %d, MoM %s\n",
					t.Month, t.Sum, t.Mean, t.Count, change))
			}
			drawSection("Monthly Trend", b.String())
		}

		if report.Correlation != nil {
			var b strings.Builder
			for i, c1 := range report.Correlation.Columns {
				for j, c2 := range report.Correlation.Columns {
					if j <= i {
						continue
					}
					b.WriteString(fmt.Sprintf("%s vs %s: %.4f\n", c1, c2, report.Correlation.Matrix[i][j]))
				}
			}
			drawSection("Correlations", b.String())
		}

		if len(report.VehicleClaims) > 0 {
			var b strings.Builder
			limit := len(report.VehicleClaims)
			if limit > 15 {
				limit = 15
			}
			for _, vc := range report.VehicleClaims[:limit] {
				b.WriteString(fmt.Sprintf("%s %s: claims %.2f over %d policies (loss ratio %s)\n",
					vc.Make, vc.Model, vc.TotalClaims, vc.Policies, ratioString(vc.LossRatio)))
			}
			if len(report.VehicleClaims) > limit {
				b.WriteString(fmt.Sprintf("... (+%d more)\n", len(report.VehicleClaims)-limit))
			}
			drawSection("Claims by Vehicle", b.String())
		}
		drawFooter()
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Exportação XLSX ---

func (r *ExportRepositoryImpl) ExportToXLSX(report *entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	// Planilha de loss ratio
	const lossRatioSheet = "Loss_Ratio"
	f.SetSheetName("Sheet1", lossRatioSheet)

	writeRow := func(sheet string, row int, cells ...interface{}) {
		for i, cell := range cells {
			name, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, name, cell)
		}
	}

	writeRow(lossRatioSheet, 1, "Segment", "Group", "Policies", "Total Premium", "Total Claims", "Loss Ratio")
	rowIdx := 2
	writeRow(lossRatioSheet, rowIdx, "Overall", "Overall", report.Overall.Policies,
		report.Overall.TotalPremium, report.Overall.TotalClaims, ratioString(report.Overall.LossRatio))
	rowIdx++
	for _, segment := range report.Segments {
		for _, row := range segment.Rows {
			writeRow(lossRatioSheet, rowIdx, segment.Column, cleanRichTags(row.Group), row.Policies,
				row.TotalPremium, row.TotalClaims, ratioString(row.LossRatio))
			rowIdx++
		}
	}

	// Planilha de distribuições
	if len(report.Distributions) > 0 {
		const sheet = "Distributions"
		f.NewSheet(sheet)
		writeRow(sheet, 1, "Column", "Count", "Mean", "Std Dev", "Min", "Q1", "Median", "Q3", "Max", "Skewness", "Kurtosis")
		for i, d := range report.Distributions {
			writeRow(sheet, i+2, d.Column, d.Count, d.Mean, d.StdDev, d.Min, d.Q1, d.Median, d.Q3, d.Max, d.Skewness, d.Kurtosis)
		}
	}

	// Planilha de outliers
	if len(report.Outliers) > 0 {
		const sheet = "Outliers"
		f.NewSheet(sheet)
		writeRow(sheet, 1, "Column", "Method", "Count", "Lower Bound", "Upper Bound", "Threshold")
		for i, o := range report.Outliers {
			writeRow(sheet, i+2, o.Column, o.Method, o.Count, o.LowerBound, o.UpperBound, o.Threshold)
		}
	}

	// Planilha de tendência mensal
	if len(report.Trend) > 0 {
		const sheet = "Monthly_Trend"
		f.NewSheet(sheet)
		writeRow(sheet, 1, "Month", "Sum", "Mean", "Count", "MoM Change %")
		for i, t := range report.Trend {
			change := "N/A"
			if t.PercentChange != nil {
				change = fmt.Sprintf("%.2f", *t.PercentChange)
			}
			writeRow(sheet, i+2, t.Month, t.Sum, t.Mean, t.Count, change)
		}
	}

	// Planilha de correlação
	if report.Correlation != nil {
		const sheet = "Correlation"
		f.NewSheet(sheet)
		header := make([]interface{}, 0, len(report.Correlation.Columns)+1)
		header = append(header, "")
		for _, c := range report.Correlation.Columns {
			header = append(header, c)
		}
		writeRow(sheet, 1, header...)
		for i, c := range report.Correlation.Columns {
			cells := make([]interface{}, 0, len(report.Correlation.Columns)+1)
			cells = append(cells, c)
			for _, v := range report.Correlation.Matrix[i] {
				cells = append(cells, v)
			}
			writeRow(sheet, i+2, cells...)
		}
	}

	// Planilha de veículos
	if len(report.VehicleClaims) > 0 {
		const sheet = "Vehicles"
		f.NewSheet(sheet)
		writeRow(sheet, 1, "Make", "Model", "Policies", "Total Claims", "Mean Claims", "Total Premium", "Loss Ratio")
		for i, vc := range report.VehicleClaims {
			writeRow(sheet, i+2, vc.Make, vc.Model, vc.Policies, vc.TotalClaims, vc.MeanClaims, vc.TotalPremium, ratioString(vc.LossRatio))
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

// ratioString formata um loss ratio possivelmente indefinido.
func ratioString(ratio *float64) string {
	if ratio == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", *ratio)
}
