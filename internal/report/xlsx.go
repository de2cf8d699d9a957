package report

import (
	"inventory-optimizer/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	allocationSheet = "Allocation"
	summarySheet    = "Summary"
)

// WriteAllocationXLSX writes a workbook with an Allocation sheet (same columns
// as the CSV) and a Summary sheet with the totals.
func WriteAllocationXLSX(path string, res *model.AllocationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), allocationSheet); err != nil {
		return err
	}
	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(allocationSheet, "A1", &hdr); err != nil {
		return err
	}
	for i, l := range res.Allocation {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{i + 1, l.RegionName, l.UnitsAllocated, l.SpaceUsed, l.Value, l.ValuePerM3}
		if err := f.SetSheetRow(allocationSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"max_space", res.MaxSpace},
		{"remaining_space", res.RemainingSpace},
		{"total_value", res.TotalValue},
		{"lines", len(res.Allocation)},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
