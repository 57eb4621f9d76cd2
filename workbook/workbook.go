// Package workbook reads and writes audit sheets as xlsx workbooks.
package workbook

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/auditmind/agent/audit"
)

// Load reads the named worksheet and returns its data rows as records.
// The first row is the header; blank cells come back as nil and numeric
// cells as float64, so the records serialize the same way everywhere.
func Load(path string, sheetName string) ([]audit.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return []audit.Record{}, nil
	}

	header := rows[0]

	records := make([]audit.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := audit.Record{}
		for i, col := range header {
			if len(strings.TrimSpace(col)) == 0 {
				continue
			}
			rec[col] = cellValue(row, i)
		}
		records = append(records, rec)
	}

	return audit.CleanRecords(records), nil
}

// Export writes records to a new workbook at outputPath. The header is
// the union of all record keys, with the recognized audit columns first.
func Export(records []audit.Record, outputPath string, sheetName string) error {
	if len(strings.TrimSpace(sheetName)) == 0 {
		sheetName = "Sheet1"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := Header(records)

	for i, col := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return err
		}
	}

	for rowIdx, rec := range records {
		for colIdx, col := range header {
			v, ok := rec[col]
			if !ok || v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", outputPath, err)
	}

	return nil
}

// Header computes the column order for an export: recognized audit
// columns in their canonical order, then everything else sorted.
func Header(records []audit.Record) []string {
	known := []string{
		audit.ColQuestionID,
		audit.ColObservation,
		audit.ColBaselineEvidence,
		audit.ColConformityLevel,
	}

	seen := map[string]bool{}
	for _, rec := range records {
		for k := range rec {
			seen[k] = true
		}
	}

	header := []string{}
	for _, col := range known {
		if seen[col] {
			header = append(header, col)
			delete(seen, col)
		}
	}

	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)

	return append(header, rest...)
}

func cellValue(row []string, i int) any {
	if i >= len(row) {
		return nil
	}

	raw := row[i]
	if len(strings.TrimSpace(raw)) == 0 {
		return nil
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}

	return raw
}
