package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"inventory-optimizer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() *model.AllocationResult {
	return &model.AllocationResult{
		MaxSpace:       100,
		RemainingSpace: 12.5,
		TotalValue:     640,
		Allocation: []model.AllocationLine{
			{RegionName: "A", UnitsAllocated: 10, SpaceUsed: 50, Value: 500, ValuePerM3: 10},
			{RegionName: "B", UnitsAllocated: 15, SpaceUsed: 37.5, Value: 140, ValuePerM3: 3.73},
		},
	}
}

func TestEncodeAllocationCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeAllocationCSV(&buf, sampleResult()))
	assert.Equal(t,
		"rank,region_name,units_allocated,space_used,value,value_per_m3\n"+
			"1,A,10,50.00,500.00,10.00\n"+
			"2,B,15,37.50,140.00,3.73\n",
		buf.String())
}

func TestWriteAllocationCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allocation.csv")
	require.NoError(t, WriteAllocationCSV(path, &model.AllocationResult{MaxSpace: 1, RemainingSpace: 1}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rank,region_name,units_allocated,space_used,value,value_per_m3\n", string(raw))
}

func TestWriteAllocationXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allocation.xlsx")
	require.NoError(t, WriteAllocationXLSX(path, sampleResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(allocationSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"2", "B", "15", "37.5", "140", "3.73"}, rows[2])

	total, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "640", total)
}
