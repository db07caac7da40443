package explore

import (
	"sort"

	"github.com/harithais/microbiome-explorer-app/internal/dataset"
)

// Selections holds the chosen filter values per column. An absent or empty
// set places no constraint on that column; non-empty sets are combined
// conjunctively across columns.
type Selections map[dataset.Column]map[string]bool

// NewSelections builds Selections from per-column value lists, ignoring
// columns that are not filterable.
func NewSelections(values map[string][]string) Selections {
	sel := make(Selections)
	for name, vals := range values {
		col, ok := filterColumn(name)
		if !ok || len(vals) == 0 {
			continue
		}
		set := make(map[string]bool, len(vals))
		for _, v := range vals {
			set[v] = true
		}
		sel[col] = set
	}
	return sel
}

// Empty reports whether no column has an active constraint.
func (s Selections) Empty() bool {
	for _, set := range s {
		if len(set) > 0 {
			return false
		}
	}
	return true
}

// Filter returns the rows satisfying every active selection.
// An empty result is valid output, not a failure.
func Filter(rows []dataset.Record, sel Selections) []dataset.Record {
	if sel.Empty() {
		return rows
	}

	out := make([]dataset.Record, 0, len(rows))
	for _, rec := range rows {
		keep := true
		for col, set := range sel {
			if len(set) == 0 {
				continue
			}
			if !set[rec.Field(col)] {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out
}

// FilterOptions returns the distinct non-empty values present in rows for
// each filterable column, sorted ascending. Choices therefore shrink and
// grow with the working table they are derived from.
func FilterOptions(rows []dataset.Record) map[dataset.Column][]string {
	options := make(map[dataset.Column][]string, len(dataset.FilterColumns))
	for _, col := range dataset.FilterColumns {
		seen := make(map[string]bool)
		var values []string
		for _, rec := range rows {
			v := rec.Field(col)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
		sort.Strings(values)
		options[col] = values
	}
	return options
}

func filterColumn(name string) (dataset.Column, bool) {
	for _, col := range dataset.FilterColumns {
		if string(col) == name {
			return col, true
		}
	}
	return "", false
}
