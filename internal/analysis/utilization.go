package analysis

import (
	"inventory-optimizer/internal/allocator"
	"inventory-optimizer/internal/model"
)

// Utilization summarizes how well an allocation served the candidates' demand.
type Utilization struct {
	Capacity       float64
	SpaceUsed      float64
	RemainingSpace float64
	FillRatio      float64
	TotalValue     float64

	// DemandSpace is the space all candidates would need at full predicted quantity.
	DemandSpace float64

	// Lines follow the order of the allocation lines.
	Lines []LineUtilization

	// Skipped lists candidates with demand that received nothing, in allocation order.
	Skipped []string
}

// LineUtilization compares one allocated candidate with its demand.
// FillRate is UnitsAllocated / UnitsDemanded.
type LineUtilization struct {
	RegionName     string
	UnitsAllocated int
	UnitsDemanded  int
	FillRate       float64
	UnmetUnits     int
}

// Summarize relates a result back to the candidates it was computed from.
// Candidates are walked in allocation order, so each allocation line is
// credited to the candidate that produced it even when names repeat.
func Summarize(candidates []model.ItemCandidate, res *model.AllocationResult) Utilization {
	u := Utilization{}
	if res == nil {
		return u
	}
	u.Capacity = res.MaxSpace
	u.RemainingSpace = res.RemainingSpace
	u.SpaceUsed = model.Round2(res.MaxSpace - res.RemainingSpace)
	u.FillRatio = res.FillRatio()
	u.TotalValue = res.TotalValue

	demand := 0.0
	remaining := res.MaxSpace
	next := 0
	for _, c := range RankByDensity(candidates) {
		demand += c.DemandSpace

		units := 0
		if remaining > 0 && next < len(res.Allocation) && res.Allocation[next].RegionName == c.Name &&
			allocator.UnitsToStore(remaining, c.SpacePerUnit, c.PredictedQuantity) > 0 {
			units = res.Allocation[next].UnitsAllocated
			remaining -= float64(units) * c.SpacePerUnit
			next++
		}
		if units == 0 {
			if c.PredictedQuantity > 0 {
				u.Skipped = append(u.Skipped, c.Name)
			}
			continue
		}

		lu := LineUtilization{
			RegionName:     c.Name,
			UnitsAllocated: units,
			UnitsDemanded:  c.PredictedQuantity,
			UnmetUnits:     c.PredictedQuantity - units,
		}
		if c.PredictedQuantity > 0 {
			lu.FillRate = float64(units) / float64(c.PredictedQuantity)
		}
		u.Lines = append(u.Lines, lu)
	}
	u.DemandSpace = model.Round2(demand)
	return u
}
