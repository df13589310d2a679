package usecase

import (
	"fmt"
	"sort"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

// Rótulo usado para valores categóricos ausentes, para que cada linha do
// dataset contribua para exatamente um grupo.
const missingGroupLabel = "(missing)"

// LossRatio returns claims/premium, or nil when the premium sum is zero.
// An undefined ratio is reported, never computed as Inf or NaN.
func LossRatio(totalClaims, totalPremium float64) *float64 {
	if totalPremium == 0 {
		return nil
	}
	ratio := totalClaims / totalPremium
	return &ratio
}

// OverallLossRatio computes the portfolio-wide loss ratio row.
func OverallLossRatio(ds *entity.Dataset, premiumColumn, claimsColumn string) (entity.LossRatioRow, error) {
	premium := ds.NumericColumn(premiumColumn)
	claims := ds.NumericColumn(claimsColumn)
	if premium == nil || claims == nil {
		return entity.LossRatioRow{}, fmt.Errorf("premium column %q or claims column %q not loaded as numeric", premiumColumn, claimsColumn)
	}

	row := entity.LossRatioRow{Group: "Overall", Policies: len(premium)}
	for i := range premium {
		row.TotalPremium += premium[i]
		row.TotalClaims += claims[i]
	}
	row.LossRatio = LossRatio(row.TotalClaims, row.TotalPremium)
	return row, nil
}

// LossRatioByColumn groups the dataset by one categorical column and
// computes the loss ratio of each group. The groups partition the input:
// rows with a missing category fall into a dedicated group. Output rows are
// sorted by loss ratio descending (undefined last), group name as tiebreak,
// so repeated runs over the same input produce identical output.
func LossRatioByColumn(ds *entity.Dataset, column, premiumColumn, claimsColumn string) (entity.LossRatioSegment, error) {
	categories := ds.CategoricalColumn(column)
	if categories == nil {
		return entity.LossRatioSegment{}, fmt.Errorf("group-by column %q not found in dataset", column)
	}
	premium := ds.NumericColumn(premiumColumn)
	claims := ds.NumericColumn(claimsColumn)
	if premium == nil || claims == nil {
		return entity.LossRatioSegment{}, fmt.Errorf("premium column %q or claims column %q not loaded as numeric", premiumColumn, claimsColumn)
	}

	groups := make(map[string]*entity.LossRatioRow)
	for i, category := range categories {
		if category == "" {
			category = missingGroupLabel
		}
		row, ok := groups[category]
		if !ok {
			row = &entity.LossRatioRow{Group: category}
			groups[category] = row
		}
		row.Policies++
		row.TotalPremium += premium[i]
		row.TotalClaims += claims[i]
	}

	segment := entity.LossRatioSegment{Column: column}
	for _, row := range groups {
		row.LossRatio = LossRatio(row.TotalClaims, row.TotalPremium)
		segment.Rows = append(segment.Rows, *row)
	}

	sort.Slice(segment.Rows, func(i, j int) bool {
		a, b := segment.Rows[i], segment.Rows[j]
		switch {
		case a.LossRatio == nil && b.LossRatio == nil:
			return a.Group < b.Group
		case a.LossRatio == nil:
			return false
		case b.LossRatio == nil:
			return true
		case *a.LossRatio != *b.LossRatio:
			return *a.LossRatio > *b.LossRatio
		default:
			return a.Group < b.Group
		}
	})

	return segment, nil
}
