package usecase

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

// Correlations computes the Pearson correlation matrix over the given
// numeric columns. The matrix is symmetric with a unit diagonal; a
// zero-variance column produces NaN entries.
func Correlations(ds *entity.Dataset, columns []string) (*entity.CorrelationMatrix, error) {
	data := make([][]float64, len(columns))
	for i, column := range columns {
		values := ds.NumericColumn(column)
		if values == nil {
			return nil, fmt.Errorf("correlation column %q not loaded as numeric", column)
		}
		data[i] = values
	}

	matrix := make([][]float64, len(columns))
	for i := range columns {
		matrix[i] = make([]float64, len(columns))
		matrix[i][i] = 1
		for j := 0; j < i; j++ {
			corr := stat.Correlation(data[i], data[j], nil)
			matrix[i][j] = corr
			matrix[j][i] = corr
		}
	}

	return &entity.CorrelationMatrix{Columns: columns, Matrix: matrix}, nil
}
