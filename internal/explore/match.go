// Package explore implements the query pipeline over the reference table:
// microbe name matching, categorical filtering, sorting, and value-count
// aggregation for charts. All operations are pure functions over record
// slices; per-user state lives in Session.
package explore

import (
	"strings"

	"github.com/harithais/microbiome-explorer-app/internal/dataset"
)

// MatchResult is the outcome of matching a query list against the reference.
type MatchResult struct {
	// Working is the subset of reference records whose Microbe value
	// prefix-matches at least one query, in reference order.
	Working []dataset.Record

	// MatchedValues are the distinct reference Microbe values that matched
	// at least one query (not the queries themselves), in reference order.
	MatchedValues []string

	// Unmatched are the queries with zero matches, in query order.
	Unmatched []string
}

// Match computes the working table for a query list.
//
// A reference Microbe value r matches query q iff lower(r) starts with
// lower(q); a record joins the working table when any query matches it.
// Queries are assumed pre-trimmed (dataset.ParseQueryList does this). A blank
// query matches every record, preserving upstream behavior.
//
// Returns ErrNoMatch when no reference record matched any query.
func Match(reference []dataset.Record, queries []string) (MatchResult, error) {
	lowered := make([]string, len(queries))
	for i, q := range queries {
		lowered[i] = strings.ToLower(q)
	}

	var result MatchResult
	hit := make([]bool, len(queries))
	seenValue := make(map[string]bool)

	for _, rec := range reference {
		microbe := strings.ToLower(rec.Microbe)
		matched := false
		for i, q := range lowered {
			if strings.HasPrefix(microbe, q) {
				matched = true
				hit[i] = true
			}
		}
		if !matched {
			continue
		}
		result.Working = append(result.Working, rec)
		if !seenValue[rec.Microbe] {
			seenValue[rec.Microbe] = true
			result.MatchedValues = append(result.MatchedValues, rec.Microbe)
		}
	}

	for i, q := range queries {
		if !hit[i] {
			result.Unmatched = append(result.Unmatched, q)
		}
	}

	if len(result.Working) == 0 {
		return result, ErrNoMatch
	}
	return result, nil
}
