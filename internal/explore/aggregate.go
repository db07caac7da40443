package explore

import (
	"sort"

	"github.com/harithais/microbiome-explorer-app/internal/dataset"
)

// ValueCount is one value-frequency pair in an aggregation result.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts groups rows by the column's value and counts occurrences.
// Results are ordered by count descending; ties keep first-encountered
// order. Empty values are skipped. topN > 0 truncates after ordering.
func ValueCounts(rows []dataset.Record, col dataset.Column, topN int) []ValueCount {
	counts := make(map[string]int)
	var order []string
	for _, rec := range rows {
		v := rec.Field(col)
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]ValueCount, len(order))
	for i, v := range order {
		out[i] = ValueCount{Value: v, Count: counts[v]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// ChartSeries is one chart's worth of aggregated data.
type ChartSeries struct {
	Title  string       `json:"title"`
	Column string       `json:"column"`
	Kind   string       `json:"kind"` // "bar" or "pie"
	Counts []ValueCount `json:"counts"`
}

// ChartData computes the four summary chart series for a filtered table:
// effect distribution, top 10 conditions, sample type breakdown, and top 10
// microbes. Returns nil for an empty table, which callers treat as "skip
// the visualization section" rather than an error.
func ChartData(rows []dataset.Record) []ChartSeries {
	if len(rows) == 0 {
		return nil
	}
	return []ChartSeries{
		{
			Title:  "Distribution by Effect",
			Column: string(dataset.ColEffect),
			Kind:   "bar",
			Counts: ValueCounts(rows, dataset.ColEffect, 0),
		},
		{
			Title:  "Top 10 Conditions",
			Column: string(dataset.ColCondition),
			Kind:   "bar",
			Counts: ValueCounts(rows, dataset.ColCondition, 10),
		},
		{
			Title:  "Sample Types",
			Column: string(dataset.ColSampleType),
			Kind:   "pie",
			Counts: ValueCounts(rows, dataset.ColSampleType, 0),
		},
		{
			Title:  "Top 10 Microbes",
			Column: string(dataset.ColMicrobe),
			Kind:   "bar",
			Counts: ValueCounts(rows, dataset.ColMicrobe, 10),
		},
	}
}
