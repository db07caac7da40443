package dataset

import "strings"

// HeaderIndex maps cleaned, lowercased column names to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Keys are lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[strings.ToLower(CleanCell(h))] = i
	}
	return idx
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// UTF-8 BOM, Excel formula prefix (="..."), surrounding quotes, whitespace.
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

// lowerColumn is the HeaderIndex key for a column.
func lowerColumn(col Column) string {
	return strings.ToLower(string(col))
}

// cell returns the cleaned value of row at pos, or "" when the row is short.
func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}

// emptyRow reports whether every cell in the row is blank after cleaning.
func emptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
