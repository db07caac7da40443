package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/harithais/microbiome-explorer-app/internal/dataset"
	"github.com/harithais/microbiome-explorer-app/internal/explore"
)

// ExploreParams carries everything the explore page needs to render.
type ExploreParams struct {
	Session *explore.Session
	Options map[dataset.Column][]string
	Rows    []dataset.Record
	SortKey string
}

// ExplorePage renders the full exploration view for a session: the match
// summary, filter panel, result table, charts and download links.
func ExplorePage(p ExploreParams) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := exploreSummary(p.Session).Render(ctx, w); err != nil {
			return err
		}
		if err := filterPanel(p).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<section id="results">
`); err != nil {
			return err
		}
		if err := ResultsTable(p.Rows).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `</section>
<section id="charts" data-session-id="%s" hx-preserve></section>
<section class="downloads">
<a href="/api/sessions/%s/export" download>Download filtered results (CSV)</a>
`, templ.EscapeString(p.Session.ID), templ.EscapeString(p.Session.ID)); err != nil {
			return err
		}
		if len(p.Session.Unmatched) > 0 {
			if _, err := fmt.Fprintf(w, `<a href="/api/sessions/%s/unmatched" download>Download unmatched microbes (CSV)</a>
`, templ.EscapeString(p.Session.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</section>\n")
		return err
	})
	return page("Explore results", body)
}

// exploreSummary shows what was uploaded and how the match went.
func exploreSummary(sess *explore.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if sess.Mode == explore.ModeAll {
			_, err := fmt.Fprintf(w, `<section class="summary">
<h2>Full dataset</h2>
<p>%d associations, %d distinct microbes.</p>
</section>
`, len(sess.Working), sess.DistinctMicrobes())
			return err
		}

		if _, err := fmt.Fprintf(w, `<section class="summary">
<h2>Matches for %s</h2>
<p>%d microbes matched, %d associations found.</p>
`, templ.EscapeString(sess.FileName), len(sess.Matched), len(sess.Working)); err != nil {
			return err
		}
		if len(sess.Unmatched) > 0 {
			if _, err := fmt.Fprintf(w, `<details class="unmatched">
<summary>%d uploaded names had no match</summary>
<ul>
`, len(sess.Unmatched)); err != nil {
				return err
			}
			for _, name := range sess.Unmatched {
				if _, err := fmt.Fprintf(w, "<li>%s</li>\n", templ.EscapeString(name)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul>\n</details>\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</section>\n")
		return err
	})
}

// filterPanel renders the multiselect filters and sort control. Changing
// any control re-fetches the result table via HTMX.
func filterPanel(p ExploreParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form class="filter-panel" hx-get="/api/sessions/%s/rows" hx-target="#results" hx-trigger="change" hx-swap="innerHTML">
`, templ.EscapeString(p.Session.ID)); err != nil {
			return err
		}

		for _, col := range dataset.FilterColumns {
			values := p.Options[col]
			if _, err := fmt.Fprintf(w, `<label>%s
<select name="filter[%s]" multiple size="5">
`, templ.EscapeString(string(col)), templ.EscapeString(string(col))); err != nil {
				return err
			}
			for _, v := range values {
				if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>
`, templ.EscapeString(v), templ.EscapeString(v)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</select>\n</label>\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<label>Sort by
<select name="sort">
`); err != nil {
			return err
		}
		sortOptions := append([]string{explore.SortNone}, columnNames(dataset.SortColumns)...)
		for _, name := range sortOptions {
			selected := ""
			if name == p.SortKey {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, templ.EscapeString(name), selected, templ.EscapeString(name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</select>\n</label>\n</form>\n")
		return err
	})
}

func columnNames(cols []dataset.Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}
	return names
}
