package dataset

import "testing"

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Lactobacillus", "Lactobacillus"},
		{"whitespace", "  Lactobacillus  ", "Lactobacillus"},
		{"bom", "\ufeffMicrobe", "Microbe"},
		{"excel formula", `="Bacteroides"`, "Bacteroides"},
		{"leading equals", "=Bacteroides", "Bacteroides"},
		{"double quotes", `"Prevotella"`, "Prevotella"},
		{"single quotes", "'Prevotella'", "Prevotella"},
		{"quotes and space", ` "Roseburia" `, "Roseburia"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.in); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{"\ufeffMicrobe", " Sample Type ", "PubMed Link"})

	if got, ok := idx["microbe"]; !ok || got != 0 {
		t.Errorf("idx[microbe] = %d, %v; want 0, true", got, ok)
	}
	if got, ok := idx["sample type"]; !ok || got != 1 {
		t.Errorf("idx[sample type] = %d, %v; want 1, true", got, ok)
	}
	if got, ok := idx["pubmed link"]; !ok || got != 2 {
		t.Errorf("idx[pubmed link] = %d, %v; want 2, true", got, ok)
	}
}

func TestRecordField(t *testing.T) {
	rec := Record{Microbe: "m", Condition: "c", Effect: "e", SampleType: "s",
		Host: "h", Method: "me", StudyTitle: "t", PubMedLink: "l"}

	for _, col := range Columns {
		if rec.Field(col) == "" {
			t.Errorf("Field(%q) returned empty", col)
		}
	}
	if rec.Field(Column("Nope")) != "" {
		t.Error("Field() on unknown column should return empty string")
	}
}
