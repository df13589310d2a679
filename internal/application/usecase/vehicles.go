package usecase

import (
	"fmt"
	"sort"

	"github.com/insurlytics/insurance-eda-go/internal/domain/entity"
)

// Colunas usadas para a quebra por veículo.
const (
	makeColumn  = "Make"
	modelColumn = "Model"
)

// VehicleClaimsBreakdown groups claims and premium by vehicle make/model.
// The result is sorted by total claims descending, make/model as tiebreak.
func VehicleClaimsBreakdown(ds *entity.Dataset, premiumColumn, claimsColumn string) ([]entity.VehicleClaims, error) {
	makes := ds.CategoricalColumn(makeColumn)
	models := ds.CategoricalColumn(modelColumn)
	if makes == nil || models == nil {
		return nil, fmt.Errorf("vehicle columns %q/%q not found in dataset", makeColumn, modelColumn)
	}
	premium := ds.NumericColumn(premiumColumn)
	claims := ds.NumericColumn(claimsColumn)
	if premium == nil || claims == nil {
		return nil, fmt.Errorf("premium column %q or claims column %q not loaded as numeric", premiumColumn, claimsColumn)
	}

	type key struct{ make, model string }
	groups := make(map[key]*entity.VehicleClaims)
	for i := range makes {
		k := key{makes[i], models[i]}
		if k.make == "" {
			k.make = missingGroupLabel
		}
		if k.model == "" {
			k.model = missingGroupLabel
		}
		vc, ok := groups[k]
		if !ok {
			vc = &entity.VehicleClaims{Make: k.make, Model: k.model}
			groups[k] = vc
		}
		vc.Policies++
		vc.TotalClaims += claims[i]
		vc.TotalPremium += premium[i]
	}

	result := make([]entity.VehicleClaims, 0, len(groups))
	for _, vc := range groups {
		vc.MeanClaims = vc.TotalClaims / float64(vc.Policies)
		vc.LossRatio = LossRatio(vc.TotalClaims, vc.TotalPremium)
		result = append(result, *vc)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalClaims != result[j].TotalClaims {
			return result[i].TotalClaims > result[j].TotalClaims
		}
		if result[i].Make != result[j].Make {
			return result[i].Make < result[j].Make
		}
		return result[i].Model < result[j].Model
	})

	return result, nil
}
