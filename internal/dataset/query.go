package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseQueryList reads an uploaded microbe list and returns the query strings
// from its "Microbe" column: trimmed, deduplicated, first-seen order preserved.
// The column name must be literally "Microbe"; anything else is a SchemaError.
//
// Blank entries survive parsing on purpose: a blank query prefix-matches every
// reference value, mirroring the upstream dataset's behavior.
//
// Supported formats, chosen by file extension: .csv, .tsv (tab-delimited),
// .xlsx (first sheet).
func ParseQueryList(filename string, r io.Reader) ([]string, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = readXLSXRows(r)
	case ".tsv":
		rows, err = readDelimitedRows(r, '\t')
	default:
		rows, err = readDelimitedRows(r, ',')
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	microbeIdx := -1
	for i, h := range rows[0] {
		if CleanCell(h) == string(ColMicrobe) {
			microbeIdx = i
			break
		}
	}
	if microbeIdx < 0 {
		return nil, &SchemaError{File: filename, Missing: []string{string(ColMicrobe)}}
	}

	seen := make(map[string]bool)
	var queries []string
	for _, row := range rows[1:] {
		q := cell(row, microbeIdx)
		if seen[q] {
			continue
		}
		seen[q] = true
		queries = append(queries, q)
	}

	return queries, nil
}

// readDelimitedRows decodes comma- or tab-separated text into raw rows.
func readDelimitedRows(r io.Reader, delim rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true // tolerate Excel's ="..." cell artifacts

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	return rows, nil
}

// readXLSXRows decodes the first sheet of an XLSX workbook into raw rows.
func readXLSXRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("invalid xlsx: no sheets found")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx: %w", err)
	}
	return rows, nil
}
