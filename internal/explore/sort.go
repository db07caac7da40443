package explore

import (
	"sort"

	"github.com/harithais/microbiome-explorer-app/internal/dataset"
)

// SortNone leaves the table in its original order.
const SortNone = "None"

// SortRows orders rows ascending by the key column. The sort is stable, so
// rows with equal keys keep their relative input order. A nil key (or
// SortNone) returns the input unchanged; the input slice is never mutated.
func SortRows(rows []dataset.Record, key *dataset.Column) []dataset.Record {
	if key == nil {
		return rows
	}

	sorted := make([]dataset.Record, len(rows))
	copy(sorted, rows)

	col := *key
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Field(col) < sorted[j].Field(col)
	})
	return sorted
}

// ParseSortKey maps a user-supplied sort name to a column, or nil for
// "None"/empty/unknown values.
func ParseSortKey(name string) *dataset.Column {
	if name == "" || name == SortNone {
		return nil
	}
	col, ok := dataset.ValidSortColumn(name)
	if !ok {
		return nil
	}
	return &col
}
