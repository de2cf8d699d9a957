package allocator

import (
	"encoding/json"
	"fmt"
	"math"

	"inventory-optimizer/internal/model"
)

// ParseCapacity accepts any numeric type (including json.Number) that is
// finite and > 0.
func ParseCapacity(v any) (float64, error) {
	f, ok := toFloat(v)
	if !ok {
		return 0, model.NewCapacityError(msgInvalidCapacity)
	}
	if err := ValidateCapacity(f); err != nil {
		return 0, err
	}
	return f, nil
}

// ParseRecords validates loosely typed input and converts it to candidates.
// Capacity is checked first, then records in index order: missing keys
// first, then each field's type and range.
func (a *Allocator) ParseRecords(capacity any, records any) (float64, []model.ItemCandidate, error) {
	c, err := ParseCapacity(capacity)
	if err != nil {
		return 0, nil, err
	}
	candidates, err := a.ParseCandidates(records)
	if err != nil {
		return 0, nil, err
	}
	return c, candidates, nil
}

// ParseCandidates is ParseRecords without a capacity.
func (a *Allocator) ParseCandidates(records any) ([]model.ItemCandidate, error) {
	list, err := recordList(records)
	if err != nil {
		return nil, err
	}

	out := make([]model.ItemCandidate, 0, len(list))
	var errs []error
	for i, rec := range list {
		cand, recErrs := decodeRecord(i, rec)
		if len(recErrs) > 0 {
			errs = append(errs, recErrs...)
			if a.policy == PolicyFailFast {
				break
			}
			continue
		}
		out = append(out, cand)
	}
	if err := a.report(errs); err != nil {
		return nil, err
	}
	return out, nil
}

func recordList(records any) ([]any, error) {
	var list []any
	switch v := records.(type) {
	case []any:
		list = v
	case []map[string]any:
		list = make([]any, len(v))
		for i := range v {
			list[i] = v[i]
		}
	case []model.ItemCandidate:
		list = make([]any, len(v))
		for i := range v {
			list[i] = v[i].Record()
		}
	default:
		return nil, model.NewCandidateListError(msgInvalidList)
	}
	if len(list) == 0 {
		return nil, model.NewCandidateListError(msgInvalidList)
	}
	return list, nil
}

func decodeRecord(i int, rec any) (model.ItemCandidate, []error) {
	m, ok := rec.(map[string]any)
	if !ok {
		return model.ItemCandidate{}, []error{model.NewCandidateListError(
			fmt.Sprintf("Item at index %d must be a mapping", i))}
	}

	var missing []string
	for _, k := range model.RequiredKeys {
		if v, ok := m[k]; !ok || v == nil {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return model.ItemCandidate{}, []error{model.NewMissingFieldError(i, missing)}
	}

	var c model.ItemCandidate
	var errs []error

	name, isString := m[model.KeyRegionName].(string)
	region := name
	if !isString {
		region = fmt.Sprint(m[model.KeyRegionName])
		errs = append(errs, model.NewFieldError(model.KindInvalidName, i, region, model.KeyRegionName,
			fmt.Sprintf("Region_Name must be a non-empty string at index %d", i)))
	} else if err := checkName(i, name); err != nil {
		errs = append(errs, err)
	}
	c.Name = name

	if space, ok := toFloat(m[model.KeySpacePerUnit]); !ok {
		errs = append(errs, typeError(model.KindInvalidSpacePerUnit, i, region, model.KeySpacePerUnit, "a number"))
	} else if err := checkSpace(i, region, space); err != nil {
		errs = append(errs, err)
	} else {
		c.SpacePerUnit = space
	}

	if qty, ok := toInt(m[model.KeyPredictedQuantity]); !ok {
		errs = append(errs, typeError(model.KindInvalidQuantity, i, region, model.KeyPredictedQuantity, "a whole number"))
	} else if err := checkQuantity(i, region, qty); err != nil {
		errs = append(errs, err)
	} else {
		c.PredictedQuantity = qty
	}

	if value, ok := toFloat(m[model.KeyValuePerUnit]); !ok {
		errs = append(errs, typeError(model.KindInvalidValue, i, region, model.KeyValuePerUnit, "a number"))
	} else if err := checkValue(i, region, value); err != nil {
		errs = append(errs, err)
	} else {
		c.ValuePerUnit = value
	}

	return c, errs
}

func typeError(kind model.ErrorKind, i int, region, field, want string) error {
	return model.NewFieldError(kind, i, region, field,
		fmt.Sprintf("%s must be %s for region %s", field, want, region))
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// maxExactInt is the largest magnitude at which float64 still holds every integer.
const maxExactInt = 1 << 53

// toInt accepts integer types and floats with no fractional part.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
	}
	f, ok := toFloat(v)
	if !ok || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > maxExactInt {
		return 0, false
	}
	return int(f), true
}
