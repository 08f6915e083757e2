// Package tabular reads samples and contingency tables from CSV and Excel
// files so the calculators can run over file input as well as inline
// arguments.
package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hypotest/domain/stats"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files,
// picking the format from the file extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Column is one named column of numeric observations.
type Column struct {
	Name   string
	Values []float64
}

// ReadColumns reads every column of the file as a numeric sample. A first
// row that fails numeric parsing is treated as the header.
func (r *DataReader) ReadColumns() ([]Column, error) {
	rows, err := r.readRows()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file %s is empty", r.filePath)
	}

	header, dataRows := splitHeader(rows)
	width := 0
	for _, row := range dataRows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("file %s has no data rows", r.filePath)
	}

	cols := make([]Column, width)
	for j := range cols {
		if j < len(header) && header[j] != "" {
			cols[j].Name = header[j]
		} else {
			cols[j].Name = fmt.Sprintf("column_%d", j+1)
		}
	}

	for i, row := range dataRows {
		for j, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: parse %q: %w", i+1, j+1, cell, err)
			}
			cols[j].Values = append(cols[j].Values, v)
		}
	}

	log.Printf("[tabular] read %d columns from %s", len(cols), r.filePath)
	return cols, nil
}

// ReadSample reads the named column (or the only column when name is empty)
// as a Sample.
func (r *DataReader) ReadSample(name string) (stats.Sample, error) {
	cols, err := r.ReadColumns()
	if err != nil {
		return stats.Sample{}, err
	}
	if name == "" {
		if len(cols) != 1 {
			return stats.Sample{}, fmt.Errorf("file %s has %d columns, name one explicitly", r.filePath, len(cols))
		}
		return stats.NewSample(cols[0].Values)
	}
	for _, col := range cols {
		if col.Name == name {
			return stats.NewSample(col.Values)
		}
	}
	return stats.Sample{}, fmt.Errorf("column %q not found in %s", name, r.filePath)
}

// ReadContingencyTable reads an R x C table of observed counts. The first
// row carries column labels (its first cell is ignored) and the first column
// carries row labels.
func (r *DataReader) ReadContingencyTable() (stats.ContingencyTable, error) {
	rows, err := r.readRows()
	if err != nil {
		return stats.ContingencyTable{}, err
	}
	if len(rows) < 2 || len(rows[0]) < 2 {
		return stats.ContingencyTable{}, fmt.Errorf("file %s is too small for a contingency table", r.filePath)
	}

	colLabels := make([]string, 0, len(rows[0])-1)
	for _, cell := range rows[0][1:] {
		colLabels = append(colLabels, strings.TrimSpace(cell))
	}

	rowLabels := make([]string, 0, len(rows)-1)
	counts := make([][]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		rowLabels = append(rowLabels, strings.TrimSpace(row[0]))
		vals := make([]float64, 0, len(colLabels))
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return stats.ContingencyTable{}, fmt.Errorf("row %d column %d: parse %q: %w", i+2, j+2, cell, err)
			}
			vals = append(vals, v)
		}
		counts = append(counts, vals)
	}

	return stats.NewContingencyTable(rowLabels, colLabels, counts)
}

func (r *DataReader) readRows() ([][]string, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVRows()
	case "xlsx":
		return r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Always use the first sheet.
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// splitHeader separates a leading label row from the data rows. The first
// row is a header when none of its non-empty cells parse as numbers.
func splitHeader(rows [][]string) ([]string, [][]string) {
	first := rows[0]
	numeric := false
	for _, cell := range first {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			numeric = true
			break
		}
	}
	if numeric {
		return nil, rows
	}
	return first, rows[1:]
}
