// Package dataset defines the microbe-host association record model and the
// loaders that turn tabular files (CSV, TSV, XLSX) into typed records.
// This package has no UI dependencies and can be used by any frontend.
package dataset

// Column identifies one of the fixed reference table columns.
type Column string

const (
	ColMicrobe    Column = "Microbe"
	ColCondition  Column = "Condition"
	ColEffect     Column = "Effect"
	ColSampleType Column = "Sample Type"
	ColHost       Column = "Host"
	ColMethod     Column = "Method"
	ColStudyTitle Column = "Study Title"
	ColPubMedLink Column = "PubMed Link"
)

// Columns lists every reference table column in display order.
var Columns = []Column{
	ColMicrobe, ColCondition, ColEffect, ColSampleType,
	ColHost, ColMethod, ColStudyTitle, ColPubMedLink,
}

// FilterColumns are the columns users can filter on.
var FilterColumns = []Column{
	ColMicrobe, ColCondition, ColEffect, ColSampleType, ColMethod,
}

// SortColumns are the columns users can sort by.
var SortColumns = []Column{
	ColMicrobe, ColCondition, ColEffect, ColSampleType, ColHost, ColMethod,
}

// Record is one row of the reference table. All fields are free-form strings
// taken verbatim from the source file (after cell cleaning).
type Record struct {
	Microbe    string
	Condition  string
	Effect     string
	SampleType string
	Host       string
	Method     string
	StudyTitle string
	PubMedLink string
}

// Field returns the record's value for a column.
// Unknown columns return the empty string.
func (r Record) Field(col Column) string {
	switch col {
	case ColMicrobe:
		return r.Microbe
	case ColCondition:
		return r.Condition
	case ColEffect:
		return r.Effect
	case ColSampleType:
		return r.SampleType
	case ColHost:
		return r.Host
	case ColMethod:
		return r.Method
	case ColStudyTitle:
		return r.StudyTitle
	case ColPubMedLink:
		return r.PubMedLink
	}
	return ""
}

// ValidColumn reports whether name matches a reference table column and
// returns the canonical Column value.
func ValidColumn(name string) (Column, bool) {
	for _, col := range Columns {
		if string(col) == name {
			return col, true
		}
	}
	return "", false
}

// ValidSortColumn reports whether name is a sortable column.
func ValidSortColumn(name string) (Column, bool) {
	for _, col := range SortColumns {
		if string(col) == name {
			return col, true
		}
	}
	return "", false
}
