// Package tabular reads information tables from CSV and Excel files and
// writes analysis results back out as JSON.
//
// The header row carries the attribute metadata in "name:kind:pref" form,
// e.g. "price:cond:cost" or "class:dec:gain". The kind segment accepts
// cond/condition, dec/decision and desc/description; the preference segment
// accepts gain, cost and none and may be omitted for non-ordinal attributes.
// Empty cells and "?" are missing values.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"godrsa/domain/dataset"
)

// DataReader handles reading information tables from Excel and CSV files
type DataReader struct{}

// NewDataReader creates a data reader that handles both Excel and CSV files
func NewDataReader() *DataReader {
	return &DataReader{}
}

// ReadTable reads the file at path into an information table. The table is
// named after the file's base name without extension.
func (r *DataReader) ReadTable(path string) (*dataset.InformationTable, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("table file not found: %s", path)
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx":
		rows, err = readExcelRows(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("table file must have a header row and at least one data row")
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return buildTable(name, rows)
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

func buildTable(name string, rows [][]string) (*dataset.InformationTable, error) {
	attrs, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	data := make([][]dataset.Evaluation, 0, len(rows)-1)
	for rowIdx, raw := range rows[1:] {
		if len(raw) != len(attrs) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", rowIdx+1, len(raw), len(attrs))
		}
		evals := make([]dataset.Evaluation, len(raw))
		for col, cell := range raw {
			eval, err := parseCell(cell, attrs[col].Pref)
			if err != nil {
				return nil, fmt.Errorf("row %d, attribute %q: %w", rowIdx+1, attrs[col].Name, err)
			}
			evals[col] = eval
		}
		data = append(data, evals)
	}
	return dataset.NewInformationTable(name, attrs, data)
}

// parseHeader turns "name:kind:pref" cells into attributes. All attributes
// read from files are active.
func parseHeader(header []string) ([]dataset.Attribute, error) {
	attrs := make([]dataset.Attribute, len(header))
	for i, cell := range header {
		parts := strings.Split(strings.TrimSpace(cell), ":")
		if parts[0] == "" {
			return nil, fmt.Errorf("header cell %d has no attribute name", i)
		}
		attr := dataset.Attribute{Name: parts[0], Kind: dataset.KindDescription, Active: true}
		if len(parts) > 1 {
			kind, err := dataset.ParseAttributeKind(parts[1])
			if err != nil {
				return nil, fmt.Errorf("header cell %d (%s): %w", i, parts[0], err)
			}
			attr.Kind = kind
		}
		if len(parts) > 2 {
			pref, err := dataset.ParsePreference(parts[2])
			if err != nil {
				return nil, fmt.Errorf("header cell %d (%s): %w", i, parts[0], err)
			}
			attr.Pref = pref
		}
		attrs[i] = attr
	}
	return attrs, nil
}

func parseCell(cell string, pref dataset.Preference) (dataset.Evaluation, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || trimmed == "?" {
		return dataset.MissingEvaluation(pref), nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return dataset.Evaluation{}, fmt.Errorf("cannot parse %q as a number", trimmed)
	}
	return dataset.NewEvaluation(value, pref), nil
}
