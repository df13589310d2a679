package repository

import (
	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

// ExportRepository defines the report writers for the analysis output.
type ExportRepository interface {
	ExportToCSV(report *entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToXLSX(report *entity.AnalysisReport, filename string, outputDir string) (string, error)
}
