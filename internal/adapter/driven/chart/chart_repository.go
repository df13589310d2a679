package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
	"github.com/insurlytics/insurance-eda-go/internal/domain/repository"
)

// ChartRepositoryImpl implementa o ChartRepository renderizando PNGs.
type ChartRepositoryImpl struct{}

// NewChartRepository cria uma nova implementação do ChartRepository.
func NewChartRepository() repository.ChartRepository {
	return &ChartRepositoryImpl{}
}

// RenderLossRatioBars renders a bar chart of the loss ratio per group of a
// segment. Groups with an undefined ratio are drawn with a zero bar.
func (r *ChartRepositoryImpl) RenderLossRatioBars(segment entity.LossRatioSegment, outputDir string) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Loss Ratio by %s", segment.Column)
	p.Y.Label.Text = "Loss Ratio"
	p.X.Label.Text = segment.Column

	values := make(plotter.Values, 0, len(segment.Rows))
	labels := make([]string, 0, len(segment.Rows))
	for _, row := range segment.Rows {
		v := 0.0
		if row.LossRatio != nil {
			v = *row.LossRatio
		}
		values = append(values, v)
		labels = append(labels, row.Group)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return "", fmt.Errorf("error building bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)

	return saveChart(p, fmt.Sprintf("loss_ratio_%s", sanitize(segment.Column)), outputDir)
}

// RenderHistogram renders the value distribution of a numeric column.
func (r *ChartRepositoryImpl) RenderHistogram(column string, values []float64, outputDir string) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("no values to plot for column %s", column)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "Frequency"

	pts := make(plotter.Values, len(values))
	copy(pts, values)

	hist, err := plotter.NewHist(pts, 30)
	if err != nil {
		return "", fmt.Errorf("error building histogram: %w", err)
	}
	hist.FillColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}

	p.Add(hist)

	return saveChart(p, fmt.Sprintf("hist_%s", sanitize(column)), outputDir)
}

// RenderTrendLine renders the monthly sum of a value column as a line chart.
func (r *ChartRepositoryImpl) RenderTrendLine(trend []entity.MonthlyTrend, valueColumn, outputDir string) (string, error) {
	if len(trend) == 0 {
		return "", fmt.Errorf("no monthly data to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Monthly %s", valueColumn)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = fmt.Sprintf("Total %s", valueColumn)

	pts := make(plotter.XYs, len(trend))
	labels := make([]string, len(trend))
	for i, t := range trend {
		pts[i].X = float64(i)
		pts[i].Y = t.Sum
		labels[i] = t.Month
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", fmt.Errorf("error building line chart: %w", err)
	}
	line.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	line.Width = vg.Points(1.5)

	p.Add(line, plotter.NewGrid())
	p.NominalX(labels...)

	return saveChart(p, fmt.Sprintf("trend_%s", sanitize(valueColumn)), outputDir)
}

// RenderCorrelationHeatmap renders the correlation matrix as a heat map.
func (r *ChartRepositoryImpl) RenderCorrelationHeatmap(matrix *entity.CorrelationMatrix, outputDir string) (string, error) {
	if matrix == nil || len(matrix.Columns) == 0 {
		return "", fmt.Errorf("no correlation data to plot")
	}

	p := plot.New()
	p.Title.Text = "Correlation Matrix"

	grid := correlationGrid{matrix: matrix}
	heatmap := plotter.NewHeatMap(grid, palette.Heat(12, 1))

	p.Add(heatmap)
	p.X.Tick.Marker = columnTicks{columns: matrix.Columns}
	p.Y.Tick.Marker = columnTicks{columns: matrix.Columns}

	return saveChart(p, "correlation_heatmap", outputDir)
}

// RenderBoxPlot renders side-by-side box plots of a numeric column per group.
func (r *ChartRepositoryImpl) RenderBoxPlot(column string, groups []entity.BoxGroup, outputDir string) (string, error) {
	if len(groups) == 0 {
		return "", fmt.Errorf("no groups to plot for column %s", column)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s by Group", column)
	p.Y.Label.Text = column

	labels := make([]string, 0, len(groups))
	for i, group := range groups {
		if len(group.Values) == 0 {
			continue
		}
		values := make(plotter.Values, len(group.Values))
		copy(values, group.Values)

		box, err := plotter.NewBoxPlot(vg.Points(20), float64(i), values)
		if err != nil {
			return "", fmt.Errorf("error building box plot for group %s: %w", group.Label, err)
		}
		p.Add(box)
		labels = append(labels, group.Label)
	}
	p.NominalX(labels...)

	return saveChart(p, fmt.Sprintf("box_%s", sanitize(column)), outputDir)
}

// correlationGrid adapta uma CorrelationMatrix ao plotter.GridXYZ.
type correlationGrid struct {
	matrix *entity.CorrelationMatrix
}

func (g correlationGrid) Dims() (c, r int) {
	n := len(g.matrix.Columns)
	return n, n
}

func (g correlationGrid) Z(c, r int) float64 { return g.matrix.Matrix[r][c] }
func (g correlationGrid) X(c int) float64    { return float64(c) }
func (g correlationGrid) Y(r int) float64    { return float64(r) }

// columnTicks coloca o nome de cada coluna no seu índice no eixo.
type columnTicks struct {
	columns []string
}

func (t columnTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t.columns))
	for i, column := range t.columns {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: column})
	}
	return ticks
}

// saveChart grava o gráfico como PNG no diretório de saída.
func saveChart(p *plot.Plot, name, outputDir string) (string, error) {
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		outputDir = cwd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating charts directory '%s': %w", outputDir, err)
	}

	outputFilename := filepath.Join(outputDir, name+".png")
	if err := p.Save(8*vg.Inch, 5*vg.Inch, outputFilename); err != nil {
		return "", fmt.Errorf("error saving chart: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// sanitize torna um nome de coluna seguro para uso em nome de arquivo.
func sanitize(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return name
}
