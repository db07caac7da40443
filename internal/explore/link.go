package explore

import "github.com/harithais/microbiome-explorer-app/internal/dataset"

// Link is a (url, label) pair derived from a record's study fields.
// Constructing it here keeps link derivation a pure data step; the
// presentation layer decides whether it becomes a hyperlink or two
// literal CSV columns.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// StudyLink derives the PubMed link for a record: the target is the
// PubMed Link value, the visible text the Study Title value.
func StudyLink(rec dataset.Record) Link {
	return Link{URL: rec.PubMedLink, Label: rec.StudyTitle}
}
