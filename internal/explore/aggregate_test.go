package explore

import (
	"reflect"
	"testing"

	"github.com/harithais/microbiome-explorer-app/internal/dataset"
)

func TestValueCounts(t *testing.T) {
	counts := ValueCounts(testReference(), dataset.ColEffect, 0)

	want := []ValueCount{
		{Value: "Decreased", Count: 2},
		{Value: "Increased", Count: 2},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v (ties keep first-encountered order)", counts, want)
	}
}

func TestValueCounts_TopN(t *testing.T) {
	counts := ValueCounts(testReference(), dataset.ColCondition, 2)
	if len(counts) != 2 {
		t.Errorf("len = %d, want 2 after truncation", len(counts))
	}
}

func TestValueCounts_OrderByCountDesc(t *testing.T) {
	counts := ValueCounts(testReference(), dataset.ColMicrobe, 0)

	if counts[0].Value != "Lactobacillus reuteri" || counts[0].Count != 2 {
		t.Errorf("counts[0] = %v, want Lactobacillus reuteri x2", counts[0])
	}
	for i := 1; i < len(counts); i++ {
		if counts[i].Count > counts[i-1].Count {
			t.Errorf("counts not descending at %d: %v", i, counts)
		}
	}
}

func TestValueCounts_TotalPreserved(t *testing.T) {
	rows := []dataset.Record{
		{Effect: "Increase"}, {Effect: "Increase"}, {Effect: "Increase"},
		{Effect: "Decrease"}, {Effect: "Decrease"},
		{Effect: "No effect"},
	}

	counts := ValueCounts(rows, dataset.ColEffect, 0)

	want := []ValueCount{
		{Value: "Increase", Count: 3},
		{Value: "Decrease", Count: 2},
		{Value: "No effect", Count: 1},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total != len(rows) {
		t.Errorf("sum of counts = %d, want %d", total, len(rows))
	}
}

func TestValueCounts_SkipsEmptyValues(t *testing.T) {
	rows := []dataset.Record{
		{Effect: "Increased"},
		{Effect: ""},
	}
	counts := ValueCounts(rows, dataset.ColEffect, 0)
	if len(counts) != 1 {
		t.Errorf("len = %d, want 1 (empty values skipped)", len(counts))
	}
}

func TestChartData(t *testing.T) {
	series := ChartData(testReference())
	if len(series) != 4 {
		t.Fatalf("len(series) = %d, want 4", len(series))
	}

	titles := []string{"Distribution by Effect", "Top 10 Conditions", "Sample Types", "Top 10 Microbes"}
	for i, s := range series {
		if s.Title != titles[i] {
			t.Errorf("series[%d].Title = %q, want %q", i, s.Title, titles[i])
		}
	}

	if series[2].Kind != "pie" {
		t.Errorf("sample type kind = %q, want pie", series[2].Kind)
	}
	if series[0].Kind != "bar" {
		t.Errorf("effect kind = %q, want bar", series[0].Kind)
	}
}

func TestChartData_EmptyRows(t *testing.T) {
	if got := ChartData(nil); got != nil {
		t.Errorf("ChartData(nil) = %v, want nil (charts are skipped for empty tables)", got)
	}
	if got := ChartData([]dataset.Record{}); got != nil {
		t.Errorf("ChartData(empty) = %v, want nil", got)
	}
}

func TestStudyLink(t *testing.T) {
	rec := dataset.Record{StudyTitle: "Gut flora in IBS", PubMedLink: "https://pubmed.example/1"}
	link := StudyLink(rec)
	if link.URL != rec.PubMedLink || link.Label != rec.StudyTitle {
		t.Errorf("StudyLink = %+v, want URL from PubMed Link and label from Study Title", link)
	}
}
