package explore

import (
	"errors"
	"reflect"
	"testing"

	"github.com/harithais/microbiome-explorer-app/internal/dataset"
)

func testReference() []dataset.Record {
	return []dataset.Record{
		{Microbe: "Lactobacillus reuteri", Condition: "IBS", Effect: "Decreased", SampleType: "Stool", Host: "Human", Method: "16S rRNA"},
		{Microbe: "Lactobacillus rhamnosus", Condition: "Eczema", Effect: "Decreased", SampleType: "Skin", Host: "Human", Method: "qPCR"},
		{Microbe: "Bacteroides fragilis", Condition: "Colitis", Effect: "Increased", SampleType: "Biopsy", Host: "Mouse", Method: "Shotgun"},
		{Microbe: "Lactobacillus reuteri", Condition: "Obesity", Effect: "Increased", SampleType: "Stool", Host: "Mouse", Method: "16S rRNA"},
	}
}

func TestMatch_PrefixCaseInsensitive(t *testing.T) {
	result, err := Match(testReference(), []string{"lactobacillus"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if len(result.Working) != 3 {
		t.Errorf("len(Working) = %d, want 3", len(result.Working))
	}
	wantValues := []string{"Lactobacillus reuteri", "Lactobacillus rhamnosus"}
	if !reflect.DeepEqual(result.MatchedValues, wantValues) {
		t.Errorf("MatchedValues = %v, want %v", result.MatchedValues, wantValues)
	}
	if len(result.Unmatched) != 0 {
		t.Errorf("Unmatched = %v, want empty", result.Unmatched)
	}
}

func TestMatch_OneDirectional(t *testing.T) {
	// The query must be a prefix of the reference value, never the reverse.
	_, err := Match(testReference(), []string{"Lactobacillus reuteri ATCC 55730"})
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Match() error = %v, want ErrNoMatch for longer-than-reference query", err)
	}
}

func TestMatch_UnmatchedKeepQueryOrder(t *testing.T) {
	result, err := Match(testReference(), []string{"Zika", "Bacteroides", "Absentia"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	want := []string{"Zika", "Absentia"}
	if !reflect.DeepEqual(result.Unmatched, want) {
		t.Errorf("Unmatched = %v, want %v", result.Unmatched, want)
	}
	if len(result.Working) != 1 {
		t.Errorf("len(Working) = %d, want 1", len(result.Working))
	}
}

func TestMatch_BlankQueryMatchesEverything(t *testing.T) {
	result, err := Match(testReference(), []string{""})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(result.Working) != len(testReference()) {
		t.Errorf("len(Working) = %d, want %d", len(result.Working), len(testReference()))
	}
}

func TestMatch_NoMatches(t *testing.T) {
	result, err := Match(testReference(), []string{"Vibrio", "Yersinia"})
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("Match() error = %v, want ErrNoMatch", err)
	}
	want := []string{"Vibrio", "Yersinia"}
	if !reflect.DeepEqual(result.Unmatched, want) {
		t.Errorf("Unmatched = %v, want %v", result.Unmatched, want)
	}
}

func TestMatch_WorkingKeepsReferenceOrder(t *testing.T) {
	result, err := Match(testReference(), []string{"Bacteroides", "Lactobacillus reuteri"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	// Reference order, not query order
	wantConditions := []string{"IBS", "Colitis", "Obesity"}
	var got []string
	for _, rec := range result.Working {
		got = append(got, rec.Condition)
	}
	if !reflect.DeepEqual(got, wantConditions) {
		t.Errorf("working conditions = %v, want %v", got, wantConditions)
	}
}

func TestMatch_QueryHitByAnyRecord(t *testing.T) {
	// A query is matched if any record matches it, even when another
	// query already claimed the same records.
	result, err := Match(testReference(), []string{"Lactobacillus", "Lactobacillus r"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(result.Unmatched) != 0 {
		t.Errorf("Unmatched = %v, want empty", result.Unmatched)
	}
	if len(result.Working) != 3 {
		t.Errorf("len(Working) = %d, want 3 (no duplicate rows)", len(result.Working))
	}
}
