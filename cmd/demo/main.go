package main

import (
	"errors"
	"flag"
	"fmt"

	"inventory-optimizer/internal/allocator"
	"inventory-optimizer/internal/analysis"
	"inventory-optimizer/internal/data"
	"inventory-optimizer/internal/model"
	"inventory-optimizer/internal/report"
)

// Demo:
// - Build (or load) a handful of regional candidates
// - Run the greedy allocator at a few capacities to show how the fill changes
// - Show what the validation errors look like
func main() {
	itemsPath := flag.String("items", "", "Optional items file (.json, .yaml, .csv, .xlsx)")
	capacity := flag.Float64("capacity", 100, "Storage capacity in m3")
	outCSV := flag.String("out", "", "Optional path to write allocation CSV (e.g. results/allocation.csv)")
	flag.Parse()

	// Defaults (can be overridden via --items).
	candidates := []model.ItemCandidate{
		{Name: "North", PredictedQuantity: 10, SpacePerUnit: 5, ValuePerUnit: 50},
		{Name: "South", PredictedQuantity: 40, SpacePerUnit: 0.5, ValuePerUnit: 3},
		{Name: "East", PredictedQuantity: 8, SpacePerUnit: 3, ValuePerUnit: 9},
		{Name: "West", PredictedQuantity: 25, SpacePerUnit: 2, ValuePerUnit: 4},
	}
	if *itemsPath != "" {
		records, err := data.LoadItems(*itemsPath)
		if err != nil {
			panic(err)
		}
		candidates, err = allocator.New().ParseCandidates(records)
		if err != nil {
			panic(err)
		}
	}

	fmt.Println("Priority (value per m3):")
	for _, r := range analysis.RankByDensity(candidates) {
		fmt.Printf("  %d. %-10s %6.2f/m3  demand=%.2f m3\n", r.Rank, r.Name, r.ValueDensity, r.DemandSpace)
	}

	for _, c := range []float64{*capacity / 4, *capacity / 2, *capacity} {
		res, err := allocator.OptimizeInventory(c, candidates)
		if err != nil {
			panic(err)
		}
		u := analysis.Summarize(candidates, res)
		fmt.Printf("\ncapacity=%.2f  remaining=%.2f  fill=%.1f%%  total_value=%.2f\n",
			res.MaxSpace, res.RemainingSpace, u.FillRatio*100, res.TotalValue)
		for _, l := range res.Allocation {
			fmt.Printf("  %-10s units=%-4d space=%8.2f  value=%8.2f\n", l.RegionName, l.UnitsAllocated, l.SpaceUsed, l.Value)
		}
		if len(u.Skipped) > 0 {
			fmt.Printf("  skipped: %v\n", u.Skipped)
		}

		if *outCSV != "" && c == *capacity {
			if err := report.WriteAllocationCSV(*outCSV, res); err != nil {
				panic(err)
			}
			fmt.Printf("\nWrote CSV: %s\n", *outCSV)
		}
	}

	fmt.Println("\nValidation:")
	_, err := allocator.OptimizeInventory(-5, candidates)
	fmt.Printf("  capacity=-5 -> %v (invalid capacity: %v)\n", err, errors.Is(err, model.ErrInvalidCapacity))
	_, err = allocator.New().OptimizeRecords(10, []any{
		map[string]any{"Region_Name": "North", "Predicted_Quantity": 1, "Space_Per_Unit": 1},
	})
	fmt.Printf("  missing field -> %v\n", err)
	_, err = allocator.OptimizeInventory(10, nil)
	fmt.Printf("  no candidates -> %v\n", err)
}
