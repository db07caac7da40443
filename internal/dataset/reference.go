package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadReference reads the reference table from a CSV file on disk.
// Called once at process start; the returned slice is treated as immutable
// and shared read-only across sessions.
func LoadReference(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference data: %w", err)
	}
	defer f.Close()

	records, err := ReadReference(f)
	if err != nil {
		return nil, fmt.Errorf("load reference data %s: %w", path, err)
	}
	return records, nil
}

// ReadReference decodes reference records from CSV. The header row must
// contain every reference column (matched case-insensitively after cell
// cleaning); a missing column is a SchemaError.
func ReadReference(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true // tolerate Excel's ="..." cell artifacts

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	idx := MakeHeaderIndex(rows[0])
	if missing := missingColumns(idx, Columns); len(missing) > 0 {
		return nil, &SchemaError{File: "reference data", Missing: missing}
	}

	pos := make(map[Column]int, len(Columns))
	for _, col := range Columns {
		pos[col] = idx[lowerColumn(col)]
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		records = append(records, Record{
			Microbe:    cell(row, pos[ColMicrobe]),
			Condition:  cell(row, pos[ColCondition]),
			Effect:     cell(row, pos[ColEffect]),
			SampleType: cell(row, pos[ColSampleType]),
			Host:       cell(row, pos[ColHost]),
			Method:     cell(row, pos[ColMethod]),
			StudyTitle: cell(row, pos[ColStudyTitle]),
			PubMedLink: cell(row, pos[ColPubMedLink]),
		})
	}

	return records, nil
}

func missingColumns(idx HeaderIndex, required []Column) []string {
	var missing []string
	for _, col := range required {
		if _, ok := idx[lowerColumn(col)]; !ok {
			missing = append(missing, string(col))
		}
	}
	return missing
}
