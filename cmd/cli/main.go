package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"inventory-optimizer/internal/allocator"
	"inventory-optimizer/internal/analysis"
	"inventory-optimizer/internal/config"
	"inventory-optimizer/internal/data"
	"inventory-optimizer/internal/model"
	"inventory-optimizer/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli optimize --config examples/scenario.yaml --out results/allocation.csv")
	fmt.Println("  cli optimize --items items.csv --capacity 500 [--policy collect_all] [--xlsx results/allocation.xlsx]")
	fmt.Println("  cli rank --items items.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - items files may be .json, .yaml, .csv or .xlsx with Region_Name, Predicted_Quantity, Space_Per_Unit, Value_Per_Unit")
	fmt.Println("  - rank lists candidates in allocation priority (value per m3)")
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	itemsPath := fs.String("items", "", "Path to items file (used when --config is not set)")
	capacity := fs.Float64("capacity", 0, "Total storage capacity in m3 (overrides config max_space)")
	policy := fs.String("policy", "", "Validation policy: fail_fast or collect_all (overrides config)")
	outPath := fs.String("out", "results/allocation.csv", "Output CSV path (empty to skip)")
	xlsxPath := fs.String("xlsx", "", "Optional output XLSX path")
	_ = fs.Parse(args)

	cfg, err := loadScenario(*cfgPath, *itemsPath)
	if err != nil {
		fail(err)
	}
	if *capacity != 0 {
		cfg.MaxSpace = *capacity
	}
	if *policy != "" {
		cfg.Policy = *policy
	}

	alloc, err := cfg.Allocator()
	if err != nil {
		fail(err)
	}
	maxSpace, candidates, err := alloc.ParseRecords(cfg.MaxSpace, cfg.Items)
	if err != nil {
		fail(err)
	}
	res, err := alloc.Optimize(maxSpace, candidates)
	if err != nil {
		fail(err)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fail(err)
		}
		if err := report.WriteAllocationCSV(*outPath, res); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Allocation), *outPath)
	}
	if *xlsxPath != "" {
		if err := os.MkdirAll(filepath.Dir(*xlsxPath), 0o755); err != nil {
			fail(err)
		}
		if err := report.WriteAllocationXLSX(*xlsxPath, res); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote workbook to %s\n", *xlsxPath)
	}

	printAllocation(res)

	u := analysis.Summarize(candidates, res)
	fmt.Printf("Capacity=%.2f Used=%.2f Remaining=%.2f Fill=%.1f%% Demand=%.2f Total value=%.2f\n",
		u.Capacity, u.SpaceUsed, u.RemainingSpace, u.FillRatio*100, u.DemandSpace, u.TotalValue)
	if len(u.Skipped) > 0 {
		fmt.Printf("Not allocated: %v\n", u.Skipped)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	itemsPath := fs.String("items", "items.csv", "Path to items file")
	_ = fs.Parse(args)

	records, err := data.LoadItems(*itemsPath)
	if err != nil {
		fail(err)
	}
	candidates, err := allocator.New().ParseCandidates(records)
	if err != nil {
		fail(err)
	}

	ranked := analysis.RankByDensity(candidates)
	fmt.Printf("%-4s %-20s %-8s %-10s %-10s %-10s %-12s\n", "rank", "region", "qty", "m3/unit", "value/unit", "value/m3", "demand m3")
	for _, r := range ranked {
		fmt.Printf(
			"%-4d %-20s %-8d %-10.2f %-10.2f %-10.2f %-12.2f\n",
			r.Rank,
			r.Name,
			r.PredictedQuantity,
			r.SpacePerUnit,
			r.ValuePerUnit,
			r.ValueDensity,
			r.DemandSpace,
		)
	}
}

// loadScenario reads a scenario config, or builds one from a bare items file.
func loadScenario(cfgPath, itemsPath string) (*config.Config, error) {
	if cfgPath != "" {
		return config.LoadUnchecked(cfgPath)
	}
	if itemsPath == "" {
		return nil, fmt.Errorf("--config or --items is required")
	}
	items, err := data.LoadItems(itemsPath)
	if err != nil {
		return nil, err
	}
	return &config.Config{Items: items}, nil
}

func printAllocation(res *model.AllocationResult) {
	fmt.Printf("%-4s %-20s %-8s %-10s %-12s %-10s\n", "#", "region", "units", "space", "value", "value/m3")
	for i, l := range res.Allocation {
		fmt.Printf("%-4d %-20s %-8d %-10.2f %-12.2f %-10.2f\n",
			i+1, l.RegionName, l.UnitsAllocated, l.SpaceUsed, l.Value, l.ValuePerM3)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
