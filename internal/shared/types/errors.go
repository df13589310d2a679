package types

import "errors"

var (
	ErrNoDatasetFile        = errors.New("no dataset file specified. Use --file or a configuration file")
	ErrEmptyDataset         = errors.New("dataset contains no data rows")
	ErrUnknownOutlierMethod = errors.New("unknown outlier method: use 'iqr' or 'zscore'")
)
