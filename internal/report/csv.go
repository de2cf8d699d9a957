package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"inventory-optimizer/internal/model"
)

var header = []string{
	"rank",
	"region_name",
	"units_allocated",
	"space_used",
	"value",
	"value_per_m3",
}

// WriteAllocationCSV writes one row per allocation line, in processing order.
func WriteAllocationCSV(path string, res *model.AllocationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeAllocationCSV(f, res); err != nil {
		return err
	}
	return f.Close()
}

func EncodeAllocationCSV(out io.Writer, res *model.AllocationResult) error {
	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, l := range res.Allocation {
		row := []string{
			strconv.Itoa(i + 1),
			l.RegionName,
			strconv.Itoa(l.UnitsAllocated),
			fmtFloat(l.SpaceUsed),
			fmtFloat(l.Value),
			fmtFloat(l.ValuePerM3),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
