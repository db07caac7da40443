package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/harithais/microbiome-explorer-app/internal/dataset"
	"github.com/harithais/microbiome-explorer-app/internal/explore"
)

// tableColumns are the columns shown in the result table, in display
// order. The study title and PubMed URL collapse into one link column.
var tableColumns = []dataset.Column{
	dataset.ColMicrobe,
	dataset.ColHost,
	dataset.ColCondition,
	dataset.ColEffect,
	dataset.ColSampleType,
	dataset.ColMethod,
}

// ResultsTable renders the filtered association rows. An empty slice
// renders a notice instead of an empty table.
func ResultsTable(rows []dataset.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rows) == 0 {
			_, err := io.WriteString(w, `<p class="empty-result">No rows match the current filters. Adjust or clear a filter to see results.</p>
`)
			return err
		}

		if _, err := io.WriteString(w, "<table class=\"results-table\">\n<thead>\n<tr>\n"); err != nil {
			return err
		}
		for _, col := range tableColumns {
			if _, err := fmt.Fprintf(w, "<th>%s</th>\n", templ.EscapeString(string(col))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "<th>Study</th>\n</tr>\n</thead>\n<tbody>\n"); err != nil {
			return err
		}

		for _, rec := range rows {
			if _, err := io.WriteString(w, "<tr>\n"); err != nil {
				return err
			}
			for _, col := range tableColumns {
				if _, err := fmt.Fprintf(w, "<td>%s</td>\n", templ.EscapeString(rec.Field(col))); err != nil {
					return err
				}
			}
			link := explore.StudyLink(rec)
			if link.URL != "" {
				if _, err := fmt.Fprintf(w, `<td><a href="%s" target="_blank" rel="noopener">%s</a></td>
`, templ.EscapeString(link.URL), templ.EscapeString(linkLabel(link))); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(w, "<td>%s</td>\n", templ.EscapeString(link.Label)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>\n"); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}

// linkLabel falls back to the URL when a study has no title.
func linkLabel(link explore.Link) string {
	if link.Label != "" {
		return link.Label
	}
	return link.URL
}
