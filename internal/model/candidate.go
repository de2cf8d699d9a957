package model

import "math"

// Record keys used by the request body and by item files.
const (
	KeyRegionName        = "Region_Name"
	KeyPredictedQuantity = "Predicted_Quantity"
	KeySpacePerUnit      = "Space_Per_Unit"
	KeyValuePerUnit      = "Value_Per_Unit"
)

// RequiredKeys lists the record keys every candidate must supply, in the order
// they are reported when missing.
var RequiredKeys = []string{
	KeyRegionName,
	KeyPredictedQuantity,
	KeySpacePerUnit,
	KeyValuePerUnit,
}

// ItemCandidate is one region's offer for storage space.
// Units:
// - PredictedQuantity: units (cap on what may be allocated)
// - SpacePerUnit: m3 per unit
// - ValuePerUnit: currency per unit
type ItemCandidate struct {
	Name              string  `json:"Region_Name" yaml:"Region_Name"`
	PredictedQuantity int     `json:"Predicted_Quantity" yaml:"Predicted_Quantity"`
	SpacePerUnit      float64 `json:"Space_Per_Unit" yaml:"Space_Per_Unit"`
	ValuePerUnit      float64 `json:"Value_Per_Unit" yaml:"Value_Per_Unit"`
}

// ValueDensity is value per m3 of space. Callers must have checked SpacePerUnit > 0.
func (c ItemCandidate) ValueDensity() float64 {
	return c.ValuePerUnit / c.SpacePerUnit
}

// Record returns the candidate in its loosely typed record form.
func (c ItemCandidate) Record() map[string]any {
	return map[string]any{
		KeyRegionName:        c.Name,
		KeyPredictedQuantity: c.PredictedQuantity,
		KeySpacePerUnit:      c.SpacePerUnit,
		KeyValuePerUnit:      c.ValuePerUnit,
	}
}

// Round2 rounds to 2 decimals for reporting.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
