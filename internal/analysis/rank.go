package analysis

import (
	"sort"

	"inventory-optimizer/internal/model"
)

// RankedCandidate is a candidate with its position in allocation priority.
// DemandSpace is the space needed to store the full predicted quantity.
type RankedCandidate struct {
	model.ItemCandidate

	Rank         int
	ValueDensity float64
	DemandSpace  float64
}

// RankByDensity orders candidates the way the allocator processes them:
// value density descending, ties in input order. Candidates must be valid.
func RankByDensity(candidates []model.ItemCandidate) []RankedCandidate {
	out := make([]RankedCandidate, len(candidates))
	for i, c := range candidates {
		out[i] = RankedCandidate{
			ItemCandidate: c,
			ValueDensity:  c.ValueDensity(),
			DemandSpace:   float64(c.PredictedQuantity) * c.SpacePerUnit,
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ValueDensity > out[j].ValueDensity
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
