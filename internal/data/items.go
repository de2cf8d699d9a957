package data

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"inventory-optimizer/internal/model"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// LoadItems reads candidate records from a .json, .yaml/.yml, .csv or .xlsx file.
// Records are returned loosely typed; validation is the allocator's job, so
// absent cells and columns are left out of the record rather than defaulted.
func LoadItems(path string) ([]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return LoadItemsXLSX(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	switch ext {
	case ".json":
		return ParseItemsJSON(raw)
	case ".yaml", ".yml":
		return ParseItemsYAML(raw)
	case ".csv":
		return ReadItemsCSV(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported items file type %q", ext)
	}
}

// ParseItemsJSON accepts either a bare array of records or a request-shaped
// object {"data": [...]}.
func ParseItemsJSON(raw []byte) ([]any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to parse items JSON: %w", err)
	}
	return unwrapItems(v)
}

// ParseItemsYAML accepts a list of records or a mapping with a "data" or "items" list.
func ParseItemsYAML(raw []byte) ([]any, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}
	return unwrapItems(v)
}

func unwrapItems(v any) ([]any, error) {
	switch x := v.(type) {
	case []any:
		return x, nil
	case map[string]any:
		for _, key := range []string{"data", "items"} {
			if list, ok := x[key].([]any); ok {
				return list, nil
			}
		}
	}
	return nil, fmt.Errorf("items must be a list or an object with a \"data\" list")
}

// ReadItemsCSV reads records from CSV with a header row.
func ReadItemsCSV(r io.Reader) ([]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse items CSV: %w", err)
	}
	return rowsToRecords(rows), nil
}

// LoadItemsXLSX reads records from the active sheet of a workbook with a header row.
func LoadItemsXLSX(path string) ([]any, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	if err != nil {
		return nil, fmt.Errorf("failed to read items workbook: %w", err)
	}
	return rowsToRecords(rows), nil
}

var numericKeys = map[string]bool{
	model.KeyPredictedQuantity: true,
	model.KeySpacePerUnit:      true,
	model.KeyValuePerUnit:      true,
}

func rowsToRecords(rows [][]string) []any {
	if len(rows) == 0 {
		return []any{}
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	out := make([]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := map[string]any{}
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if numericKeys[header[i]] {
				rec[header[i]] = parseNumber(cell)
			} else {
				rec[header[i]] = cell
			}
		}
		out = append(out, rec)
	}
	return out
}

// parseNumber returns an int, a float64, or the raw string if the cell is not numeric.
func parseNumber(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
