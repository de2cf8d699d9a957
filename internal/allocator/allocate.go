package allocator

import (
	"math"
	"sort"

	"inventory-optimizer/internal/model"
)

// ranked pairs a candidate with its value density for the duration of one call.
// The caller's candidates are never written to.
type ranked struct {
	model.ItemCandidate
	density float64
}

// rank orders candidates by value density, descending. Equal densities keep
// their input order.
func rank(candidates []model.ItemCandidate) []ranked {
	out := make([]ranked, len(candidates))
	for i, c := range candidates {
		out[i] = ranked{ItemCandidate: c, density: c.ValueDensity()}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].density > out[j].density
	})
	return out
}

// Allocate runs the greedy fill over already validated inputs.
//
// Each candidate in density order receives min(floor(remaining/space), qty)
// units. The pass stops as soon as remaining space reaches zero, even if later
// candidates would need no space. Remaining space and total value accumulate at
// full precision and are rounded only when reported.
func Allocate(capacity float64, candidates []model.ItemCandidate) *model.AllocationResult {
	remaining := capacity
	total := 0.0
	lines := make([]model.AllocationLine, 0, len(candidates))

	for _, c := range rank(candidates) {
		units := UnitsToStore(remaining, c.SpacePerUnit, c.PredictedQuantity)
		if units > 0 {
			spaceUsed := float64(units) * c.SpacePerUnit
			valueGained := float64(units) * c.ValuePerUnit
			lines = append(lines, model.AllocationLine{
				RegionName:     c.Name,
				UnitsAllocated: units,
				SpaceUsed:      model.Round2(spaceUsed),
				Value:          model.Round2(valueGained),
				ValuePerM3:     model.Round2(c.density),
			})
			remaining -= spaceUsed
			total += valueGained
		}
		if remaining <= 0 {
			break
		}
	}

	rem := model.Round2(remaining)
	if rem <= 0 {
		rem = 0
	}
	return &model.AllocationResult{
		MaxSpace:       capacity,
		RemainingSpace: rem,
		TotalValue:     model.Round2(total),
		Allocation:     lines,
	}
}

// UnitsToStore is min(floor(remaining/spacePerUnit), qty), lowered where the
// float product units*spacePerUnit would still exceed remaining.
func UnitsToStore(remaining, spacePerUnit float64, qty int) int {
	if qty <= 0 || remaining <= 0 {
		return 0
	}
	fit := math.Floor(remaining / spacePerUnit)
	if fit <= 0 {
		return 0
	}
	n := qty
	if fit < float64(qty) {
		n = int(fit)
	}
	for n > 0 && float64(n)*spacePerUnit > remaining {
		n--
	}
	return n
}
