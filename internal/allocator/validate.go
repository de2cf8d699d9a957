package allocator

import (
	"fmt"
	"math"
	"strings"

	"inventory-optimizer/internal/model"
)

const (
	msgInvalidCapacity = "max_space must be a positive number"
	msgInvalidList     = "items must be a non-empty list"
)

// ValidateCapacity rejects zero, negative, NaN and infinite capacities.
func ValidateCapacity(capacity float64) error {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity <= 0 {
		return model.NewCapacityError(msgInvalidCapacity)
	}
	return nil
}

// Validate checks every candidate before any allocation happens.
func (a *Allocator) Validate(capacity float64, candidates []model.ItemCandidate) error {
	if err := ValidateCapacity(capacity); err != nil {
		return err
	}
	if len(candidates) == 0 {
		return model.NewCandidateListError(msgInvalidList)
	}
	var errs []error
	for i, c := range candidates {
		errs = append(errs, candidateErrors(i, c)...)
		if len(errs) > 0 && a.policy == PolicyFailFast {
			break
		}
	}
	return a.report(errs)
}

// candidateErrors returns the violations of one candidate in check order:
// name, space per unit, quantity, value per unit.
func candidateErrors(i int, c model.ItemCandidate) []error {
	var errs []error
	if err := checkName(i, c.Name); err != nil {
		errs = append(errs, err)
	}
	if err := checkSpace(i, c.Name, c.SpacePerUnit); err != nil {
		errs = append(errs, err)
	}
	if err := checkQuantity(i, c.Name, c.PredictedQuantity); err != nil {
		errs = append(errs, err)
	}
	if err := checkValue(i, c.Name, c.ValuePerUnit); err != nil {
		errs = append(errs, err)
	}
	return errs
}

func checkName(i int, name string) error {
	if strings.TrimSpace(name) == "" {
		return model.NewFieldError(model.KindInvalidName, i, name, model.KeyRegionName,
			fmt.Sprintf("Region_Name must be a non-empty string at index %d", i))
	}
	return nil
}

func checkSpace(i int, region string, space float64) error {
	if !(space > 0) || math.IsInf(space, 1) {
		return model.NewFieldError(model.KindInvalidSpacePerUnit, i, region, model.KeySpacePerUnit,
			fmt.Sprintf("Space_Per_Unit must be > 0 for region %s", region))
	}
	return nil
}

func checkQuantity(i int, region string, qty int) error {
	if qty < 0 {
		return model.NewFieldError(model.KindInvalidQuantity, i, region, model.KeyPredictedQuantity,
			fmt.Sprintf("Predicted_Quantity must be >= 0 for region %s", region))
	}
	return nil
}

func checkValue(i int, region string, value float64) error {
	if !(value >= 0) || math.IsInf(value, 1) {
		return model.NewFieldError(model.KindInvalidValue, i, region, model.KeyValuePerUnit,
			fmt.Sprintf("Value_Per_Unit must be >= 0 for region %s", region))
	}
	return nil
}
