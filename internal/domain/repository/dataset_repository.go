package repository

import (
	"context"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

// DatasetRepository defines the interface for loading and summarizing the
// policy dataset.
type DatasetRepository interface {
	Load(ctx context.Context, opts entity.LoadOptions) (*entity.Dataset, error)
	Summarize(dataset *entity.Dataset) entity.DatasetSummary
}
