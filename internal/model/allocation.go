package model

// AllocationLine is one candidate that received a nonzero allocation.
// Figures are rounded to 2 decimals.
type AllocationLine struct {
	RegionName     string  `json:"Region_Name"`
	UnitsAllocated int     `json:"Units_Allocated"`
	SpaceUsed      float64 `json:"Space_Used"`
	Value          float64 `json:"Value"`
	ValuePerM3     float64 `json:"Value_Per_m3"`
}

// AllocationResult is the outcome of one optimization pass.
// Allocation is ordered by descending value density (processing order).
type AllocationResult struct {
	MaxSpace       float64          `json:"max_space"`
	RemainingSpace float64          `json:"remaining_space"`
	TotalValue     float64          `json:"total_value"`
	Allocation     []AllocationLine `json:"allocation"`
}

// SpaceUsed sums the reported space of every line.
func (r *AllocationResult) SpaceUsed() float64 {
	if r == nil {
		return 0
	}
	sum := 0.0
	for _, l := range r.Allocation {
		sum += l.SpaceUsed
	}
	return sum
}

// FillRatio is the share of MaxSpace that was allocated, in [0,1].
func (r *AllocationResult) FillRatio() float64 {
	if r == nil || r.MaxSpace <= 0 {
		return 0
	}
	f := (r.MaxSpace - r.RemainingSpace) / r.MaxSpace
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
